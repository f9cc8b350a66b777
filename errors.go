package housing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingSource = errors.New("source file not found")
	ErrMissingColumn = errors.New("required column missing")
	ErrCardinality   = errors.New("join cardinality violated")
	ErrDuplicateKey  = errors.New("duplicate community/year")
	ErrCommunity     = errors.New("community not found")
	ErrYear          = errors.New("year must be 2016 or 2017")
	ErrNoRecord      = errors.New("no data for community and year")
)

// CardinalityError reports a join key that matched more rows than the join allows.
type CardinalityError struct {
	Left, Right string
	On          []string
	Key         string
	Matches     int
	Validate    Cardinality
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("%s join of %s with %s on %s: key %q matches %d rows",
		e.Validate, e.Left, e.Right, strings.Join(e.On, ","), e.Key, e.Matches)
}

func (e *CardinalityError) Unwrap() error {
	return ErrCardinality
}
