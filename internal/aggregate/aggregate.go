// Package aggregate reduces clean records to summary values.
package aggregate

import (
	"math/big"

	"github.com/rickgao/series-data/internal/model"
)

// Sum returns the arithmetic sum of the record's series. An empty series sums to 0.
// Nil elements count as 0.
func Sum(clean model.CleanRecord) *big.Int {
	total := new(big.Int)
	for _, v := range clean.Series {
		if v != nil {
			total.Add(total, v)
		}
	}
	return total
}
