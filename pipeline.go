package housing

import "fmt"

// Sources are the paths of the three input files.
type Sources struct {
	Census     string
	Assessment string
	Ward       string
}

// Options tune a Run. The zero value is the default: structure policy, comma separated files
// and unknown assessments left nil.
type Options struct {
	Policy         Policy
	Sep            rune
	ZeroAssessment bool
}

// Run loads, merges and derives the dataset. The diagnostics are returned even when Run fails.
func Run(src Sources, opts Options) (*Dataset, *Diagnostics, error) {
	diag := NewDiagnostics()

	sep := opts.Sep
	if sep == 0 {
		sep = Sep
	}

	var (
		ldr                      *Loader
		census, assessment, ward *Table
		merged                   *Table
		ds                       *Dataset
		e                        error
	)
	if ldr, e = NewLoader(LoaderPolicy(opts.Policy), LoaderSeparator(sep), LoaderDiagnostics(diag)); e != nil {
		return nil, diag, e
	}

	if census, e = ldr.Census(src.Census); e != nil {
		return nil, diag, e
	}

	if assessment, e = ldr.Assessment(src.Assessment); e != nil {
		return nil, diag, e
	}

	if ward, e = ldr.Ward(src.Ward); e != nil {
		return nil, diag, e
	}

	if merged, e = Merge(census, assessment, ward, diag); e != nil {
		return nil, diag, e
	}

	if ds, e = Derive(merged, DeriveZeroAssessment(opts.ZeroAssessment), DeriveDiagnostics(diag)); e != nil {
		return nil, diag, fmt.Errorf("derive: %w", e)
	}

	return ds, diag, nil
}
