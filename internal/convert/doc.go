// Package convert coerces raw string records into their integer form.
//
// Values are parsed as base-10 integers of any size into *big.Int.
// Surrounding whitespace and a single leading sign are accepted; anything
// else that is not a digit fails with a *ParseError naming the offending field.
package convert
