package housing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// All code interacting with files is here

const (
	Sep         = ','
	EOL         = '\n'
	StringDelim = '"'
	Header      = true
)

// Files reads and writes delimited text files. Empty fields are missing values.
type Files struct {
	FieldNames  []string
	EOL         byte
	Sep         rune
	StringDelim byte
	FloatFormat string // fmt verb for floats, "" writes the shortest exact form
	Header      bool

	file     *os.File
	fileName string
}

// FileOpt configures Files.
type FileOpt func(f *Files) error

func FileSep(sep rune) FileOpt {
	return func(f *Files) error {
		if sep == 0 || sep == '\r' || sep == '\n' || sep == rune(f.StringDelim) {
			return fmt.Errorf("invalid separator %q", sep)
		}

		f.Sep = sep
		return nil
	}
}

// FileFloatFormat sets the fmt verb used to write floats, such as "%.2f".
func FileFloatFormat(format string) FileOpt {
	return func(f *Files) error {
		if format != "" && !strings.Contains(format, "%") {
			return fmt.Errorf("float format %q has no verb", format)
		}

		f.FloatFormat = format
		return nil
	}
}

func NewFiles(opts ...FileOpt) (*Files, error) {
	f := &Files{
		EOL:         byte(EOL),
		Sep:         Sep,
		StringDelim: byte(StringDelim),
		Header:      Header,
	}

	for _, opt := range opts {
		if e := opt(f); e != nil {
			return nil, e
		}
	}

	return f, nil
}

func (f *Files) Open(fileName string) error {
	var e error
	f.fileName = fileName
	f.file, e = os.Open(fileName)

	return e
}

func (f *Files) Create(fileName string) error {
	var e error
	f.fileName = fileName
	f.file, e = os.Create(fileName)

	return e
}

func (f *Files) FileName() string {
	return f.fileName
}

func (f *Files) Close() error {
	if f.file != nil {
		e := f.file.Close()
		f.file = nil
		return e
	}

	return fmt.Errorf("no open files")
}

// Read loads the open file into a Table. All cells are strings or nil. Without a header,
// FieldNames must be set.
func (f *Files) Read() (*Table, error) {
	if f.file == nil {
		return nil, fmt.Errorf("no open files")
	}

	rdr := csv.NewReader(f.file)
	rdr.Comma = f.Sep
	rdr.FieldsPerRecord = -1
	rdr.LazyQuotes = true

	names := f.FieldNames
	if f.Header {
		hdr, e := rdr.Read()
		if e != nil {
			return nil, fmt.Errorf("reading header of %s: %w", f.fileName, e)
		}

		if names == nil {
			names = uniqueNames(hdr)
		}
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("field names not set in *Files")
	}

	data := make([][]any, len(names))
	for {
		rec, e := rdr.Read()
		if errors.Is(e, io.EOF) {
			break
		}

		if e != nil {
			return nil, fmt.Errorf("reading %s: %w", f.fileName, e)
		}

		// blank lines are skipped by csv; a row of empty strings is kept
		for ind := range names {
			var x any
			if ind < len(rec) && strings.TrimSpace(rec[ind]) != "" {
				x = rec[ind]
			}

			data[ind] = append(data[ind], x)
		}
	}

	var cols []*Column
	for ind, nm := range names {
		cols = append(cols, &Column{name: nm, data: data[ind]})
	}

	return NewTable(f.fileName, cols...)
}

func (f *Files) WriteLine(v []any) error {
	var line []byte
	for ind := 0; ind < len(v); ind++ {
		var lx []byte
		switch d := v[ind].(type) {
		case nil:
		case float64:
			lx = []byte(f.float(d))
		case int:
			lx = []byte(strconv.Itoa(d))
		case string:
			lx = f.quote(d)
		case *float64:
			if d != nil {
				lx = []byte(f.float(*d))
			}
		case *int:
			if d != nil {
				lx = []byte(strconv.Itoa(*d))
			}
		case *string:
			if d != nil {
				lx = f.quote(*d)
			}
		default:
			lx = []byte("#err#")
		}

		line = append(line, lx...)
		if ind < len(v)-1 {
			line = append(line, []byte(string(f.Sep))...)
		}
	}

	if _, e := f.file.Write(line); e != nil {
		return e
	}

	_, e := f.file.Write([]byte{f.EOL})

	return e
}

func (f *Files) WriteHeader() error {
	if !f.Header {
		return nil
	}

	if f.FieldNames == nil {
		return fmt.Errorf("field names not set in *Files")
	}

	_, e := f.file.WriteString(strings.Join(f.FieldNames, string(f.Sep)) + string(rune(f.EOL)))

	return e
}

// Save writes t to fileName, header first. An error closing the file is returned.
func (f *Files) Save(fileName string, t *Table) (e error) {
	f.FieldNames = t.ColumnNames()
	if e = f.Create(fileName); e != nil {
		return e
	}
	defer func() {
		if ec := f.Close(); e == nil {
			e = ec
		}
	}()

	if e = f.WriteHeader(); e != nil {
		return e
	}

	for row := 0; row < t.RowCount(); row++ {
		var v []any
		for _, col := range t.cols {
			v = append(v, col.Element(row))
		}

		if e = f.WriteLine(v); e != nil {
			return e
		}
	}

	return nil
}

func (f *Files) float(x float64) string {
	if f.FloatFormat == "" {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	return fmt.Sprintf(f.FloatFormat, x)
}

func (f *Files) quote(s string) []byte {
	delim := string(f.StringDelim)
	return []byte(delim + strings.ReplaceAll(s, delim, delim+delim) + delim)
}

// ReadTable opens, reads and closes fileName. A missing file is reported as ErrMissingSource.
func ReadTable(fileName string, opts ...FileOpt) (*Table, error) {
	var (
		f *Files
		e error
	)
	if f, e = NewFiles(opts...); e != nil {
		return nil, e
	}

	if e = f.Open(fileName); e != nil {
		if errors.Is(e, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", fileName, ErrMissingSource)
		}

		return nil, e
	}
	defer func() { _ = f.Close() }()

	return f.Read()
}

// uniqueNames strips a byte order mark and makes repeated header names unique, NAME, NAME.1, ...
func uniqueNames(hdr []string) []string {
	const bom = "\ufeff"

	var names []string
	seen := make(map[string]int)
	for ind, nm := range hdr {
		if ind == 0 {
			nm = strings.TrimPrefix(nm, bom)
		}

		out := nm
		if n := seen[nm]; n > 0 {
			out = fmt.Sprintf("%s.%d", nm, n)
		}

		seen[nm]++
		names = append(names, out)
	}

	return names
}
