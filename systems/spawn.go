package systems

import (
	"math/rand"
	"sort"

	"github.com/lixenwraith/sushi-belt/components"
	"github.com/lixenwraith/sushi-belt/config"
	"github.com/lixenwraith/sushi-belt/pacing"
	"github.com/lixenwraith/sushi-belt/vmath"
)

// Spawner creates items with kind drawn from the weight table
type Spawner struct {
	spawn      config.SpawnConfig
	difficulty int
	kinds      []components.KindInfo
	table      *WeightTable[components.KindInfo]
	rng        *rand.Rand
	nextID     int
}

// NewSpawner validates the kind table and returns a spawner drawing from rng
func NewSpawner(cfg *config.Config, rng *rand.Rand) (*Spawner, error) {
	kinds, table, err := BuildKindTable(cfg)
	if err != nil {
		return nil, err
	}
	return &Spawner{
		spawn:      cfg.Spawn,
		difficulty: cfg.Difficulty,
		kinds:      kinds,
		table:      table,
		rng:        rng,
	}, nil
}

// Kinds returns the effective kind table
func (s *Spawner) Kinds() []components.KindInfo {
	return s.kinds
}

// NextID returns a fresh item id
func (s *Spawner) NextID() int {
	s.nextID++
	return s.nextID
}

// CreateItem draws a kind and randomizes angle, radius, speed and size
// Speed grows with level and is slowed or hastened by difficulty; it is always positive
func (s *Spawner) CreateItem(id, level int) components.Item {
	info := s.table.Sample(s.rng)
	sp := s.spawn

	speed := (sp.SpeedBase + float64(max(0, level))*sp.SpeedPerLevel) / pacing.DifficultyFactor(s.difficulty)

	return components.Item{
		ID:     id,
		Kind:   info.Kind,
		Angle:  s.rng.Float64() * vmath.TwoPi,
		Radius: vmath.Lerp(sp.RadiusMin, sp.RadiusMax, s.rng.Float64()),
		Speed:  speed,
		Value:  info.Value,
		Size:   vmath.Lerp(sp.SizeMin, sp.SizeMax, s.rng.Float64()),
		Hazard: info.Hazard,
	}
}

// SetSize returns min(base + level*step, cap)
func (s *Spawner) SetSize(level int) int {
	return min(s.spawn.Base+level*s.spawn.PerLevel, s.spawn.Cap)
}

// SpawnSet produces a level's full item set
func (s *Spawner) SpawnSet(level int) []components.Item {
	n := s.SetSize(level)
	items := make([]components.Item, n)
	for i := range items {
		items[i] = s.CreateItem(s.NextID(), level)
	}
	return items
}

// Floor returns the active count below which replacements spawn immediately
func (s *Spawner) Floor() int {
	return s.spawn.Floor
}

// LargestGapMidpoint returns the offset halfway across the widest empty stretch of a loop
func LargestGapMidpoint(offsets []float64, period float64) float64 {
	if len(offsets) == 0 || period <= 0 {
		return 0
	}
	sorted := append([]float64(nil), offsets...)
	sort.Float64s(sorted)

	bestStart, bestGap := sorted[len(sorted)-1], sorted[0]+period-sorted[len(sorted)-1]
	for i := 1; i < len(sorted); i++ {
		if gap := sorted[i] - sorted[i-1]; gap > bestGap {
			bestStart, bestGap = sorted[i-1], gap
		}
	}
	return vmath.Wrap(bestStart+bestGap/2, period)
}
