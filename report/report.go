package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/invertedv/housing"
	"github.com/olekukonko/tablewriter"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	warning = color.New(color.FgRed)
	good    = color.New(color.FgGreen)
)

func title(w io.Writer, s string) {
	_, _ = heading.Fprintf(w, "\n=== %s ===\n", s)
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader(header)
	tbl.SetAutoFormatHeaders(false)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)

	return tbl
}

// Overview prints the record count, the missing values and the summary statistics.
func Overview(w io.Writer, ds *housing.Dataset) {
	title(w, "Dataset overview")
	_, _ = fmt.Fprintf(w, "Total records: %s\n", count(float64(ds.Len())))

	Missing(w, ds)
	Describe(w, ds)
}

// Missing prints the columns with unknown values.
func Missing(w io.Writer, ds *housing.Dataset) {
	title(w, "Missing values")

	miss := housing.MissingSummary(ds)
	if len(miss) == 0 {
		_, _ = good.Fprintln(w, "No missing values")
		return
	}

	tbl := newTable(w, "column", "missing", "percent")
	for _, m := range miss {
		tbl.Append([]string{m.Column, count(float64(m.Count)), fmt.Sprintf("%.1f%%", m.Percent)})
	}

	tbl.Render()
}

// Describe prints the summary statistics of the numeric fields.
func Describe(w io.Writer, ds *housing.Dataset) {
	title(w, "Summary statistics")

	tbl := newTable(w, "field", "count", "mean", "std", "min", "25%", "50%", "75%", "max")
	for _, s := range housing.DescribeAll(ds) {
		tbl.Append([]string{s.Field, count(float64(s.Count)), number(s.Mean), number(s.Std), number(s.Min),
			number(s.Q25), number(s.Median), number(s.Q75), number(s.Max)})
	}

	tbl.Render()
}

// Head prints the first n records.
func Head(w io.Writer, ds *housing.Dataset, n int) {
	title(w, fmt.Sprintf("First %d records", n))

	tbl := newTable(w, "community", "year", "ward", "sector", "area type", "residents", "dwellings",
		"vacant", "median assessment", "per person", "vacancy rate")
	for ind, r := range ds.Records() {
		if ind == n {
			break
		}

		tbl.Append([]string{r.Community, fmt.Sprintf("%d", r.Year), intPtr(r.Ward), strPtr(r.Sector),
			string(r.AreaType), count(r.Residents), count(r.Dwellings), count(r.Vacant), moneyPtr(r.Assessment),
			moneyCents(r.PerPerson), percent(r.VacancyRate)})
	}

	tbl.Render()
}

// AreaDistribution prints the number of records of each area type.
func AreaDistribution(w io.Writer, ds *housing.Dataset) {
	title(w, "Area type distribution")

	counts := make(map[housing.AreaType]int)
	for _, r := range ds.Records() {
		counts[r.AreaType]++
	}

	tbl := newTable(w, "area type", "records")
	for _, at := range housing.AreaTypes {
		tbl.Append([]string{string(at), count(float64(counts[at]))})
	}

	tbl.Render()
}

// Profile prints one community in one year.
func Profile(w io.Writer, r housing.Record) {
	title(w, fmt.Sprintf("Community profile: %s", r.Key()))

	tbl := newTable(w, "item", "value")
	tbl.SetAlignment(tablewriter.ALIGN_LEFT)
	tbl.AppendBulk([][]string{
		{"Ward", intPtr(r.Ward)},
		{"Sector", strPtr(r.Sector)},
		{"Area type", string(r.AreaType)},
		{"Population", count(r.Residents)},
		{"Total dwellings", count(r.Dwellings)},
		{"Vacant dwellings", count(r.Vacant)},
		{"Vacancy rate", percent(r.VacancyRate)},
		{"Median assessment", moneyPtr(r.Assessment)},
		{"Assessment per person", moneyCents(r.PerPerson)},
	})
	tbl.Render()

	if len(r.DwellingTypes) == 0 {
		return
	}

	var types []string
	for nm := range r.DwellingTypes {
		types = append(types, nm)
	}
	sort.Strings(types)

	tbl = newTable(w, "dwelling type", "dwellings")
	for _, nm := range types {
		tbl.Append([]string{nm, count(r.DwellingTypes[nm])})
	}

	tbl.Render()
}
