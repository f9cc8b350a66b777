package housing

import (
	"fmt"
	"strings"
)

// AreaType is the development class of a community.
type AreaType string

const (
	InnerCity AreaType = "Inner-City"
	Suburban  AreaType = "Suburban"
)

// AreaTypes lists the classes in report order.
var AreaTypes = []AreaType{InnerCity, Suburban}

// ParseAreaType recognizes an already classified value, ignoring case and surrounding space.
func ParseAreaType(x any) (AreaType, bool) {
	s, ok := x.(string)
	if !ok {
		return Suburban, false
	}

	for _, at := range AreaTypes {
		if strings.EqualFold(strings.TrimSpace(s), string(at)) {
			return at, true
		}
	}

	return Suburban, false
}

// Policy is a rule set mapping a source label to an AreaType.
type Policy uint8

const (
	// PolicyStructure classifies the COMM_STRUCTURE codes of the ward table
	// (INNER CITY, 1950s, BUILDING OUT, ...).
	PolicyStructure Policy = iota
	// PolicyCategory classifies category labels (CITY CENTRE, ESTABLISHED, ...).
	PolicyCategory
)

func (p Policy) String() string {
	switch p {
	case PolicyStructure:
		return "structure"
	case PolicyCategory:
		return "category"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// ParsePolicy accepts "structure" (or "a") and "category" (or "b").
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "structure", "a", "":
		return PolicyStructure, nil
	case "category", "b":
		return PolicyCategory, nil
	}

	return PolicyStructure, fmt.Errorf("unknown classifier policy %q", name)
}

var (
	innerCityNames = []string{"INNER CITY", "CENTRE CITY", "INNER-CITY", "CENTER CITY", "DOWNTOWN"}

	// communities developed before 1980
	innerCityDecades = []string{"PRE 1910", "PRE-1910", "BEFORE 1910", "1910S", "1920S", "1930S", "1940S",
		"1950S", "1960S", "1970S", "1960S/1970S", "1960/1970", "1960-1970"}

	suburbanTokens = []string{"BUILDING OUT", "BUILDOUT", "BUILD OUT", "DEVELOPING", "FUTURE",
		"1980S", "1990S", "2000S", "2010S", "2020S", "NEW", "GREENFIELD"}

	innerCityCategories = []string{"CITY CENTRE", "ESTABLISHED", "INNER CITY"}
)

// Classify maps label to an AreaType. Anything that is not a string, or is not recognized,
// is Suburban.
func (p Policy) Classify(label any) AreaType {
	s, ok := label.(string)
	if !ok {
		if sp, isPtr := label.(*string); isPtr && sp != nil {
			s, ok = *sp, true
		}
	}

	if !ok {
		return Suburban
	}

	if p == PolicyCategory {
		return classifyCategory(s)
	}

	return classifyStructure(s)
}

func classifyStructure(label string) AreaType {
	structure := strings.TrimSpace(upper(label))

	if has(structure, innerCityNames) {
		return InnerCity
	}

	if containsAny(structure, innerCityNames) || containsAny(structure, innerCityDecades) {
		return InnerCity
	}

	if containsAny(structure, suburbanTokens) {
		return Suburban
	}

	return Suburban
}

func classifyCategory(label string) AreaType {
	if has(upper(label), innerCityCategories) {
		return InnerCity
	}

	return Suburban
}

func containsAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}

	return false
}
