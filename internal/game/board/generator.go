package board

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/rs/zerolog"
)

// GenConfig holds board generation parameters.
type GenConfig struct {
	Width        int
	Height       int
	SeaLevel     float64 // elevation threshold below which quads are sea
	MountainLvl  float64 // elevation threshold above which quads are mountain
	AridityLvl   float64 // aridity threshold splitting desert from forest
	NoiseScale   float64 // noise sampling frequency; smaller = larger biome patches
	CoreRatio    int     // 1 core resource per N quads (approximate)
	RareRatio    int     // 1 rare resource per N quads (approximate)
	RelicRatio   int     // 1 relic per N quads (approximate)
}

// DefaultGenConfig returns the standard full-size board configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:       Width,
		Height:      Height,
		SeaLevel:    0.3,
		MountainLvl: 0.7,
		AridityLvl:  0.5,
		NoiseScale:  0.08,
		CoreRatio:   12,
		RareRatio:   80,
		RelicRatio:  60,
	}
}

// Generator produces boards deterministically from an injected RNG. The
// noise fields are seeded from the same RNG, so two generators constructed
// from identically seeded sources yield identical boards.
type Generator struct {
	cfg    GenConfig
	rng    *rand.Rand
	logger zerolog.Logger

	elevation opensimplex.Noise
	aridity   opensimplex.Noise
}

// NewGenerator creates a board generator.
func NewGenerator(cfg GenConfig, rng *rand.Rand, logger zerolog.Logger) *Generator {
	return &Generator{
		cfg:       cfg,
		rng:       rng,
		logger:    logger.With().Str("component", "board_generator").Logger(),
		elevation: opensimplex.NewNormalized(rng.Int63()),
		aridity:   opensimplex.NewNormalized(rng.Int63()),
	}
}

// Generate builds a new board: biomes from layered noise, yields from
// per-biome uniform ranges, then scattered resources and relics.
func (g *Generator) Generate() *Board {
	b := New(g.cfg.Width, g.cfg.Height)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			q := &b.Quads[y][x]
			q.Biome = g.biomeAt(x, y)
			q.Wealth, q.Harvest, q.Zeal, q.Fortune = g.yieldsFor(q.Biome)
		}
	}
	g.placeResources(b)
	g.placeRelics(b)
	g.logger.Debug().Int("width", b.W).Int("height", b.H).Msg("Board generated")
	return b
}

func (g *Generator) biomeAt(x, y int) Biome {
	elev := g.elevation.Eval2(float64(x)*g.cfg.NoiseScale, float64(y)*g.cfg.NoiseScale)
	if elev < g.cfg.SeaLevel {
		return BiomeSea
	}
	if elev > g.cfg.MountainLvl {
		return BiomeMountain
	}
	arid := g.aridity.Eval2(float64(x)*g.cfg.NoiseScale, float64(y)*g.cfg.NoiseScale)
	if arid > g.cfg.AridityLvl {
		return BiomeDesert
	}
	return BiomeForest
}

// yieldsFor draws the four yields from the biome's fixed ranges.
func (g *Generator) yieldsFor(biome Biome) (wealth, harvest, zeal, fortune float64) {
	uniform := func(lo, hi float64) float64 {
		return lo + g.rng.Float64()*(hi-lo)
	}
	switch biome {
	case BiomeForest:
		return uniform(0, 2), uniform(5, 10), uniform(1, 4), uniform(3, 6)
	case BiomeSea:
		return uniform(1, 4), uniform(3, 6), uniform(0, 1), uniform(5, 10)
	case BiomeDesert:
		return uniform(5, 10), uniform(0, 1), uniform(3, 6), uniform(1, 4)
	case BiomeMountain:
		return uniform(3, 6), uniform(1, 4), uniform(5, 10), uniform(0, 2)
	}
	return 0, 0, 0, 0
}

func (g *Generator) placeResources(b *Board) {
	coreWant := b.W * b.H / g.cfg.CoreRatio
	for i := 0; i < coreWant; i++ {
		q := &b.Quads[g.rng.Intn(b.H)][g.rng.Intn(b.W)]
		switch g.rng.Intn(3) {
		case 0:
			q.Resources.Ore++
		case 1:
			q.Resources.Timber++
		case 2:
			q.Resources.Magma++
		}
	}
	rareWant := b.W * b.H / g.cfg.RareRatio
	for i := 0; i < rareWant; i++ {
		q := &b.Quads[g.rng.Intn(b.H)][g.rng.Intn(b.W)]
		if !q.Resources.IsEmpty() {
			continue
		}
		switch g.rng.Intn(5) {
		case 0:
			q.Resources.Aurora++
		case 1:
			q.Resources.Bloodstone++
		case 2:
			q.Resources.Obsidian++
		case 3:
			q.Resources.Sunstone++
		case 4:
			q.Resources.Aquamarine++
		}
	}
}

func (g *Generator) placeRelics(b *Board) {
	want := b.W * b.H / g.cfg.RelicRatio
	placed := 0
	// Bounded retry so a resource-dense board cannot loop forever.
	for attempts := 0; placed < want && attempts < want*10; attempts++ {
		q := &b.Quads[g.rng.Intn(b.H)][g.rng.Intn(b.W)]
		if q.Relic || !q.Resources.IsEmpty() {
			continue
		}
		q.Relic = true
		placed++
	}
}
