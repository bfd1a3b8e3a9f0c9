package exporter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseTime parses a user-entered timestamp in seconds, such as "4.15".
func ParseTime(input string) (float64, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidTimeInput)
	}
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeInput, input)
	}
	if sec < 0 || math.IsNaN(sec) || math.IsInf(sec, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeInput, input)
	}
	return sec, nil
}
