package convert

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/rickgao/series-data/internal/model"
)

// ErrParse matches every *ParseError via errors.Is.
var ErrParse = errors.New("parse error")

// ParseError reports a field that is not a base-10 integer.
type ParseError struct {
	Field string // "index" or "series[i]"
	Value string // Value as received
	Err   error  // strconv.ErrSyntax
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: invalid integer %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ParseInt parses a single base-10 integer string of any magnitude.
// "42" -> 42, " -7 " -> -7, "+3" -> 3
func ParseInt(field, value string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(value), 10)
	if !ok {
		return nil, &ParseError{Field: field, Value: value, Err: strconv.ErrSyntax}
	}
	return n, nil
}

// Coerce converts a RawRecord to a CleanRecord.
// Series order and length are preserved. On the first invalid value it
// returns a zero CleanRecord and a *ParseError.
func Coerce(raw model.RawRecord) (model.CleanRecord, error) {
	series := make([]*big.Int, len(raw.Series))
	for i, value := range raw.Series {
		n, err := ParseInt("series["+strconv.Itoa(i)+"]", value)
		if err != nil {
			return model.CleanRecord{}, err
		}
		series[i] = n
	}

	index, err := ParseInt("index", raw.Index)
	if err != nil {
		return model.CleanRecord{}, err
	}

	return model.CleanRecord{
		Series: series,
		Index:  index,
	}, nil
}
