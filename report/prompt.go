package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/invertedv/housing"
)

// Shown is the number of communities listed before the first prompt.
const Shown = 10

// ErrNoInput is returned when the input ends before a choice is made.
var ErrNoInput = errors.New("no input")

// Prompter asks the user for a community and a year until it gets a pair in the dataset.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
	ds  *housing.Dataset
}

func NewPrompter(in io.Reader, out io.Writer, ds *housing.Dataset) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out, ds: ds}
}

// Choose returns the record the user picks.
func (p *Prompter) Choose() (housing.Record, error) {
	p.list(Shown)

	for {
		var (
			community string
			year      int
			e         error
		)
		if community, e = p.Community(); e != nil {
			return housing.Record{}, e
		}

		if year, e = p.Year(); e != nil {
			return housing.Record{}, e
		}

		r, e := p.ds.Validate(community, year)
		if e == nil {
			return r, nil
		}

		_, _ = warning.Fprintf(p.out, "%v\n", e)
	}
}

// Community reads community names until one is in the dataset. "list" shows every community.
func (p *Prompter) Community() (string, error) {
	for {
		var (
			line string
			e    error
		)
		if line, e = p.read("Community name (or 'list'): "); e != nil {
			return "", e
		}

		switch {
		case line == "":
			continue
		case strings.EqualFold(line, "list"):
			p.list(0)
			continue
		case !p.ds.HasCommunity(line):
			_, _ = warning.Fprintf(p.out, "community %q not found\n", housing.NormalizeKey(line))
			continue
		}

		return housing.NormalizeKey(line), nil
	}
}

// Year reads years until one is valid.
func (p *Prompter) Year() (int, error) {
	var choices []string
	for _, y := range housing.Years {
		choices = append(choices, strconv.Itoa(y))
	}

	for {
		var (
			line string
			e    error
		)
		if line, e = p.read(fmt.Sprintf("Year (%s): ", strings.Join(choices, ", "))); e != nil {
			return 0, e
		}

		year, e := strconv.Atoi(line)
		if e != nil || !housing.ValidYear(year) {
			_, _ = warning.Fprintf(p.out, "year must be one of %s\n", strings.Join(choices, ", "))
			continue
		}

		return year, nil
	}
}

// list prints the first n communities, all of them if n is 0
func (p *Prompter) list(n int) {
	names := p.ds.Communities()
	more := 0
	if n > 0 && len(names) > n {
		names, more = names[:n], len(names)-n
	}

	_, _ = heading.Fprintln(p.out, "Communities:")
	for _, nm := range names {
		_, _ = fmt.Fprintf(p.out, "  %s\n", nm)
	}

	if more > 0 {
		_, _ = fmt.Fprintf(p.out, "  ... and %d more, type 'list' to see them all\n", more)
	}
}

func (p *Prompter) read(prompt string) (string, error) {
	_, _ = fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if e := p.in.Err(); e != nil {
			return "", e
		}

		return "", ErrNoInput
	}

	return strings.TrimSpace(p.in.Text()), nil
}
