package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type InvalidPriceError struct {
	Input string
}

func (e InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price: %q", e.Input)
}

// ParsePrice parses a non-negative decimal price. Leading "$" and
// surrounding whitespace are accepted; NaN, Inf, negatives and junk are not.
func ParsePrice(s string) (float64, error) {
	raw := s
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	if s == "" {
		return 0, InvalidPriceError{Input: raw}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, InvalidPriceError{Input: raw}
	}
	return v, nil
}
