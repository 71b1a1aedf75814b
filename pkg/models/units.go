package models

import (
	"fmt"
	"strconv"
)

const bytesPerMegabyte = 1 << 20

// UnitError reports a size or percentage string whose suffix could not be
// interpreted.
type UnitError struct {
	Suffix string
	Input  string
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("unsupported size suffix: %q (%s)", e.Suffix, e.Input)
}

// ParseSize converts the device's megabyte notation (e.g. "214.7M") into a
// byte count (e.g. 225129267). The fractional part is truncated, matching the
// values the device reports elsewhere.
func ParseSize(size string) (int64, error) {
	if size == "" || size[len(size)-1] != 'M' {
		suffix := ""
		if size != "" {
			suffix = size[len(size)-1:]
		}
		return 0, &UnitError{Suffix: suffix, Input: size}
	}
	mb, err := strconv.ParseFloat(size[:len(size)-1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", size, err)
	}
	return int64(mb * bytesPerMegabyte), nil
}

// ParsePercent converts percentage notation (e.g. "8%") into an integer.
func ParsePercent(pct string) (int, error) {
	if pct == "" || pct[len(pct)-1] != '%' {
		suffix := ""
		if pct != "" {
			suffix = pct[len(pct)-1:]
		}
		return 0, &UnitError{Suffix: suffix, Input: pct}
	}
	n, err := strconv.Atoi(pct[:len(pct)-1])
	if err != nil {
		return 0, fmt.Errorf("invalid percentage value %q: %w", pct, err)
	}
	return n, nil
}
