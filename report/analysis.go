package report

import (
	"fmt"
	"io"

	"github.com/invertedv/housing"
)

// Analysis prints every part of a.
func Analysis(w io.Writer, a *housing.Analysis) {
	Averages(w, a.Averages)
	HighValue(w, a)
	Sectors(w, a.Sectors)
	Pivot(w, a.Pivot)
	Growth(w, a)
	Values(w, a)
	Areas(w, a)
	Insights(w, a)
}

// Averages prints the mean assessment by area type.
func Averages(w io.Writer, avg housing.AreaAverages) {
	title(w, fmt.Sprintf("Average assessment by area type, %d", avg.Year))

	tbl := newTable(w, "area type", "communities", "mean assessment")
	for _, g := range avg.Groups {
		tbl.Append([]string{string(g.AreaType), count(float64(g.Count)), money(g.Mean)})
	}
	tbl.Render()

	if avg.Excluded > 0 {
		_, _ = fmt.Fprintf(w, "%d records without an assessment or residents excluded\n", avg.Excluded)
	}
}

// HighValue prints the count of high value records and the top five.
func HighValue(w io.Writer, a *housing.Analysis) {
	title(w, fmt.Sprintf("High value communities (over %s)", money(a.Threshold)))
	_, _ = fmt.Fprintf(w, "%d of %d records\n", a.HighValue.Len(), a.Records)

	if len(a.Top) == 0 {
		return
	}

	tbl := newTable(w, "community", "year", "sector", "median assessment")
	for _, r := range a.Top {
		tbl.Append([]string{r.Community, fmt.Sprintf("%d", r.Year), strPtr(r.Sector), moneyPtr(r.Assessment)})
	}

	tbl.Render()
}

// Sectors prints the sector summary.
func Sectors(w io.Writer, sectors []housing.SectorStats) {
	title(w, "Sector summary")

	tbl := newTable(w, "sector", "population", "mean assessment", "mean vacancy", "records")
	for _, s := range sectors {
		tbl.Append([]string{s.Sector, count(s.Population), moneyPtr(s.MeanAssessment), percent(s.MeanVacancy),
			count(float64(s.Records))})
	}

	tbl.Render()
}

// Pivot prints population and mean assessment by sector and year.
func Pivot(w io.Writer, rows []housing.PivotRow) {
	title(w, "Sector by year")

	header := []string{"sector"}
	for _, year := range housing.Years {
		header = append(header, fmt.Sprintf("population %d", year), fmt.Sprintf("assessment %d", year))
	}

	tbl := newTable(w, header...)
	for _, row := range rows {
		line := []string{row.Sector}
		for _, year := range housing.Years {
			s, ok := row.Years[year]
			if !ok {
				line = append(line, NA, NA)
				continue
			}

			line = append(line, count(s.Population), moneyPtr(s.MeanAssessment))
		}

		tbl.Append(line)
	}

	tbl.Render()
}

// Growth prints the population growth of each sector.
func Growth(w io.Writer, a *housing.Analysis) {
	first, last := housing.Years[0], housing.Years[len(housing.Years)-1]
	title(w, fmt.Sprintf("Which sectors are growing fastest? %d to %d", first, last))

	tbl := newTable(w, "sector", fmt.Sprintf("%d", first), fmt.Sprintf("%d", last), "change", "growth")
	for _, g := range a.Growth {
		tbl.Append([]string{g.Name, count(g.From), count(g.To), count(g.Change), signedPct(g.Rate)})
	}
	tbl.Render()

	if a.FastestGrowth != nil {
		_, _ = fmt.Fprintf(w, "Fastest growth: %s (%s)\n", a.FastestGrowth.Name, signedPct(a.FastestGrowth.Rate))
	}

	if a.LargestIncrease != nil {
		_, _ = fmt.Fprintf(w, "Largest increase: %s (%s residents)\n", a.LargestIncrease.Name,
			count(a.LargestIncrease.Change))
	}
}

// Values prints the sectors with the highest mean assessment.
func Values(w io.Writer, a *housing.Analysis) {
	title(w, "Which sectors have the highest property values?")

	tbl := newTable(w, "rank", "sector", "mean assessment", "population")
	for ind, s := range a.TopSectors {
		tbl.Append([]string{fmt.Sprintf("%d", ind+1), s.Sector, moneyPtr(s.MeanAssessment), count(s.Population)})
	}
	tbl.Render()

	if a.LargestPopulation == nil || a.HighestValue == nil {
		return
	}

	if a.InverseRelation {
		_, _ = fmt.Fprintf(w, "The most populous sector (%s) is not the most valuable (%s)\n",
			a.LargestPopulation.Sector, a.HighestValue.Sector)
		return
	}

	_, _ = fmt.Fprintf(w, "%s is both the most populous and the most valuable sector\n", a.HighestValue.Sector)
}

// Areas prints the inner-city and suburban comparison.
func Areas(w io.Writer, a *housing.Analysis) {
	first, last := housing.Years[0], housing.Years[len(housing.Years)-1]
	title(w, "Inner-City versus Suburban")

	tbl := newTable(w, "area type", fmt.Sprintf("population %d", first), fmt.Sprintf("population %d", last),
		"population growth", fmt.Sprintf("assessment %d", first), fmt.Sprintf("assessment %d", last),
		"assessment growth", fmt.Sprintf("vacancy %d", last))
	for _, ac := range a.Areas {
		tbl.Append([]string{string(ac.AreaType), count(ac.Population.From), count(ac.Population.To),
			signedPct(ac.Population.Rate), moneyPtr(ac.Assessment[0]), moneyPtr(ac.Assessment[1]),
			signedPct(ac.AssessGrowth), percent(ac.Vacancy)})
	}

	tbl.Render()
}

// Insights prints the answers in a few sentences.
func Insights(w io.Writer, a *housing.Analysis) {
	title(w, "Key insights")

	if a.FastestGrowth != nil {
		_, _ = fmt.Fprintf(w, "- %s is the fastest growing sector at %s\n", a.FastestGrowth.Name,
			signedPct(a.FastestGrowth.Rate))
	}

	if a.HighestValue != nil {
		_, _ = fmt.Fprintf(w, "- %s has the highest mean assessment at %s\n", a.HighestValue.Sector,
			moneyPtr(a.HighestValue.MeanAssessment))
	}

	if a.Pattern != "" {
		_, _ = fmt.Fprintf(w, "- %s areas grow faster, indicating %s\n", a.FasterArea, a.Pattern)
		_, _ = fmt.Fprintf(w, "- %s areas have higher vacancy by %.2f percentage points\n", a.HigherVacancy,
			a.VacancyGap)
	}

	_, _ = fmt.Fprintf(w, "- %d records with a sector and residents were analyzed\n", a.ValidRecords)
}
