package airspace

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"mayday/internal/rand"
	"mayday/pkg/types"
)

type Layout int

const (
	// SINGLE places YYZ at the origin with no sampling.
	SINGLE Layout = iota
	THREE_RANDOM
	// RANDOM places a configured number of random airports.
	RANDOM
)

var ErrUnknownLayout = errors.New("unknown airport layout")

var LayoutStringMap = map[Layout]string{
	SINGLE:       "single",
	THREE_RANDOM: "three-random",
	RANDOM:       "random",
}

func (l Layout) String() string {
	if s, ok := LayoutStringMap[l]; ok {
		return s
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

func ParseLayout(s string) (Layout, error) {
	for l, name := range LayoutStringMap {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

// MAX_AIRPORTS is the number of distinct three-letter codes.
const MAX_AIRPORTS = 26 * 26 * 26

var airportCodes = []string{
	"YYZ", "YUL", "YVR", "YYC", "YOW", "YEG", "YWG", "YHZ",
	"YQB", "YXE", "YQR", "YYJ", "YYT", "YXU", "YQM", "YSJ",
}

// SetupLayout places the layout's airports into the airspace. count is only
// consulted for RANDOM.
func (ap *Airspace) SetupLayout(layout Layout, count int, p *Placer) error {
	switch layout {
	case SINGLE:
		ap.AddAirport("YYZ", types.NewVec2(0, 0))
		return nil
	case THREE_RANDOM:
		return ap.placeRandom(3, p)
	case RANDOM:
		if count < 0 {
			return fmt.Errorf("negative airport count %d", count)
		}
		return ap.placeRandom(count, p)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownLayout, layout)
	}
}

func (ap *Airspace) placeRandom(n int, p *Placer) error {
	if n > MAX_AIRPORTS {
		return fmt.Errorf("%w: %d airports exceed the %d available codes", ErrPlacementInfeasible, n, MAX_AIRPORTS)
	}
	points, err := p.Place(n, ap.Bounds)
	if err != nil {
		return err
	}
	names := airportNames(p.Rand, len(points))
	for i, pt := range points {
		ap.AddAirport(names[i], pt)
	}
	return nil
}

// airportNames returns min(n, MAX_AIRPORTS) distinct codes, drawing from the
// known list first and then walking the three-letter code space from a
// random offset.
func airportNames(r *rand.Rand, n int) []string {
	n = min(n, MAX_AIRPORTS)
	pool := slices.Clone(airportCodes)
	names := make([]string, 0, n)
	used := make(map[string]bool, n)
	for len(names) < n && len(pool) > 0 {
		i := r.Intn(len(pool))
		names = append(names, pool[i])
		used[pool[i]] = true
		pool = slices.Delete(pool, i, i+1)
	}

	if len(names) == n {
		return names
	}
	start := r.Intn(MAX_AIRPORTS)
	for k := 0; len(names) < n && k < MAX_AIRPORTS; k++ {
		code := codeAt((start + k) % MAX_AIRPORTS)
		if !used[code] {
			names = append(names, code)
			used[code] = true
		}
	}
	return names
}

// codeAt returns the i'th code of AAA..ZZZ.
func codeAt(i int) string {
	return string([]byte{
		byte('A' + i/(26*26)),
		byte('A' + i/26%26),
		byte('A' + i%26),
	})
}
