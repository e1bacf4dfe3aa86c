package core

import (
	"fmt"
	"strings"
)

// FormatBits renders cells as a string of '0' and '1' characters.
func FormatBits(cells []uint8) string {
	var b strings.Builder
	b.Grow(len(cells))
	for _, c := range cells {
		if c != 0 {
			b.WriteByte('1')
			continue
		}
		b.WriteByte('0')
	}
	return b.String()
}

// ParseBits converts a string of '0' and '1' characters into cells.
func ParseBits(s string) ([]uint8, error) {
	cells := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			cells[i] = 1
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, s[i], i)
		}
	}
	return cells, nil
}

// ValidateCells reports the first cell that is neither 0 nor 1.
func ValidateCells(cells []uint8) error {
	for i, c := range cells {
		if c > 1 {
			return fmt.Errorf("%w: cell %d is %d", ErrInvalidCell, i, c)
		}
	}
	return nil
}

// IsAllZeros reports whether every cell is 0.
func IsAllZeros(cells []uint8) bool {
	for _, c := range cells {
		if c != 0 {
			return false
		}
	}
	return true
}

// IsAllOnes reports whether every cell is 1.
func IsAllOnes(cells []uint8) bool {
	for _, c := range cells {
		if c != 1 {
			return false
		}
	}
	return true
}

// Density returns the fraction of cells set to 1.
func Density(cells []uint8) (float64, error) {
	if len(cells) == 0 {
		return 0, ErrEmptyConfiguration
	}
	sum := 0
	for _, c := range cells {
		sum += int(c)
	}
	return float64(sum) / float64(len(cells)), nil
}
