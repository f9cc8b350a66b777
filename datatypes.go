package housing

import "fmt"

// DataTypes are the types of data a Column holds
type DataTypes uint8

// values of DataTypes
const (
	DTunknown DataTypes = 0 + iota
	DTstring
	DTfloat
	DTint
)

// max value of DataTypes type
const MaxDT = DTint

//go:generate stringer -type=DataTypes

// DTFromString is the inverse of DataTypes.String.
func DTFromString(nm string) DataTypes {
	var nms []string
	for ind := DataTypes(0); ind <= MaxDT; ind++ {
		nms = append(nms, fmt.Sprintf("%v", ind))
	}

	pos := position(nm, nms)
	if pos < 0 {
		return DTunknown
	}

	return DataTypes(uint8(pos))
}

// WhatAmI returns the DataTypes of val. nil is DTunknown.
func WhatAmI(val any) DataTypes {
	switch val.(type) {
	case float64, *float64:
		return DTfloat
	case int, *int:
		return DTint
	case string, *string:
		return DTstring
	default:
		return DTunknown
	}
}
