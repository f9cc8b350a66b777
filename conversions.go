package housing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// thousands separator stripped from numeric text before parsing
const thousandsSep = ","

var dateFormats = []string{"2006-01-02", "2006/01/02", "20060102", "1/2/2006", "01/02/2006",
	"2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02T15:04:05.000", time.RFC3339, "Jan 2, 2006", "January 2, 2006"}

// ParseNumber converts x to a float. Strings have thousands separators and surrounding
// space removed first. Non-finite values do not parse.
func ParseNumber(x any) (float64, bool) {
	var f float64
	switch v := x.(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case *float64:
		if v == nil {
			return 0, false
		}
		f = *v
	case *int:
		if v == nil {
			return 0, false
		}
		f = float64(*v)
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), thousandsSep, "")
		var e error
		if f, e = strconv.ParseFloat(s, 64); e != nil {
			return 0, false
		}
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// ParseInt is ParseNumber restricted to whole numbers.
func ParseInt(x any) (int, bool) {
	f, ok := ParseNumber(x)
	if !ok || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}

	return int(f), true
}

// ParseYear accepts a whole number or a date and returns its year.
func ParseYear(x any) (int, bool) {
	y, isInt := ParseInt(x)
	if isInt && y >= 1000 && y <= 9999 {
		return y, true
	}

	s, ok := x.(string)
	if !ok {
		return y, isInt
	}

	s = strings.TrimSpace(s)
	for _, format := range dateFormats {
		if dt, e := time.Parse(format, s); e == nil {
			return dt.Year(), true
		}
	}

	return y, isInt
}

func toString(x any) string {
	switch v := x.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func floatPtr(x float64) *float64 {
	return &x
}

func intPtr(x int) *int {
	return &x
}

func strPtr(x string) *string {
	return &x
}

// optFloat is ParseNumber with nil for values that do not parse
func optFloat(x any) *float64 {
	if f, ok := ParseNumber(x); ok {
		return floatPtr(f)
	}

	return nil
}

func optInt(x any) *int {
	if n, ok := ParseInt(x); ok {
		return intPtr(n)
	}

	return nil
}

func optString(x any) *string {
	if x == nil {
		return nil
	}

	s := strings.TrimSpace(toString(x))
	if s == "" {
		return nil
	}

	return strPtr(s)
}

// zeroIfMissing is ParseNumber with 0 for values that do not parse
func zeroIfMissing(x any) float64 {
	f, _ := ParseNumber(x)
	return f
}
