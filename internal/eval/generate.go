package eval

import (
	"fmt"

	"eca-density/internal/core"
	pkgcore "eca-density/pkg/core"
)

// RandomConfiguration returns n uniformly random cells drawn from seed.
// Equal seeds give equal configurations; seed 0 draws from an entropy source
// and is not reproducible.
func RandomConfiguration(n int, seed uint64) ([]uint8, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", core.ErrNonPositiveSize, n)
	}
	cells := make([]uint8, n)
	pkgcore.FillBinary(pkgcore.NewRNG(seed).Source(), cells)
	return cells, nil
}

// SeedSchedule derives the seed of trial index as index*Multiplier + Offset.
type SeedSchedule struct {
	Multiplier uint64
	Offset     uint64
}

// DefaultSeedSchedule is the schedule used unless configured otherwise.
var DefaultSeedSchedule = SeedSchedule{Multiplier: 9876, Offset: 42}

// Seed returns the seed for the given trial index.
func (s SeedSchedule) Seed(index int) uint64 {
	return uint64(index)*s.Multiplier + s.Offset
}
