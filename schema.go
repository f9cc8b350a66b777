package housing

import "regexp"

// canonical column names
const (
	ColCommunity    = "community_name"
	ColYear         = "year"
	ColWard         = "ward"
	ColWardNum      = "ward_num"
	ColSector       = "sector"
	ColAreaType     = "area_type"
	ColResidents    = "resident_count"
	ColDwellings    = "dwellings_total"
	ColVacant       = "dwellings_vacant"
	ColDwellingType = "dwelling_type"
	ColAssessment   = "median_assessment"
	ColPerPerson    = "assessment_per_person"
	ColVacancyRate  = "vacancy_rate"
)

// Sentinel is the catch-all ward row the city publishes. It is not a community.
const Sentinel = "SYSTEM/UNCLASSIFIED/RESIDUAL WARD"

// Years are the census years the dataset covers.
var Years = []int{2016, 2017}

func ValidYear(year int) bool {
	return has(year, Years)
}

var (
	wardRenames = map[string]string{
		"NAME":     ColCommunity,
		"sector":   ColSector,
		"SECTOR":   ColSector,
		"WARD_NUM": ColWardNum,
	}

	censusRenames = map[string]string{
		"CENSUS_YEAR":               ColYear,
		"COMMUNITY":                 ColCommunity,
		"RESIDENT_CNT":              ColResidents,
		"DWELLING_CNT":              ColDwellings,
		"VACANT_DWELLING_CNT":       ColVacant,
		"WARD":                      ColWard,
		"DWELLING_TYPE_DESCRIPTION": ColDwellingType,
	}

	assessmentRenames = map[string]string{
		"date":           ColYear,
		"Community name": ColCommunity,
	}

	medianPattern = regexp.MustCompile(`(?i)median.*assess|assess.*median`)

	// columns that come from the ward table and are dropped from the other sources
	classificationCols = []string{ColSector, ColAreaType}

	areaSourcePattern = regexp.MustCompile(`(?i)category|comm_structure`)
)

// DefaultMedianColumn is used when no assessment column name mentions both "median" and "assess".
const DefaultMedianColumn = "Median assessed value"

// Columns is the export order of a Dataset.
var Columns = []string{ColCommunity, ColYear, ColWard, ColSector, ColAreaType, ColResidents,
	ColDwellings, ColVacant, ColAssessment, ColPerPerson, ColVacancyRate}
