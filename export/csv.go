package export

import (
	"fmt"

	"github.com/invertedv/housing"
)

// WriteCSV writes the dataset to fileName, one line per record in housing.Columns order.
// Unknown values are empty fields.
func WriteCSV(ds *housing.Dataset, fileName string, opts ...housing.FileOpt) error {
	var (
		f *housing.Files
		e error
	)
	if f, e = housing.NewFiles(opts...); e != nil {
		return e
	}

	if e = f.Save(fileName, ds.Table()); e != nil {
		return fmt.Errorf("export csv %s: %w", fileName, e)
	}

	return nil
}

// ReadCSV loads a file written by WriteCSV.
func ReadCSV(fileName string, opts ...housing.FileOpt) (*housing.Dataset, error) {
	var (
		t *housing.Table
		e error
	)
	if t, e = housing.ReadTable(fileName, opts...); e != nil {
		return nil, e
	}

	return housing.FromTable(t)
}
