package traffic

import (
	"errors"
	"fmt"
	"strings"
)

type Density int

const (
	LOW Density = iota
	MEDIUM
	HIGH
)

var ErrUnknownDensity = errors.New("unknown traffic density")

var DensityStringMap = map[Density]string{
	LOW:    "low",
	MEDIUM: "medium",
	HIGH:   "high",
}

var spawnIntervals = map[Density]float64{
	LOW:    15,
	MEDIUM: 10,
	HIGH:   5,
}

func (d Density) String() string {
	if s, ok := DensityStringMap[d]; ok {
		return s
	}
	return fmt.Sprintf("Density(%d)", int(d))
}

// SpawnInterval returns the seconds between spawns for the density.
func (d Density) SpawnInterval() (float64, error) {
	iv, ok := spawnIntervals[d]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownDensity, d)
	}
	return iv, nil
}

func ParseDensity(s string) (Density, error) {
	for d, name := range DensityStringMap {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDensity, s)
}
