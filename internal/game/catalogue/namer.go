package catalogue

import (
	"math/rand"

	"github.com/hollowmere/quadrealm/internal/game/board"
)

var settlementNames = map[board.Biome][]string{
	board.BiomeDesert: {
		"Enfu", "Saknoten", "Despemar", "Khasolzum", "Nekpesir", "Akhtamar",
		"Absai", "Khanomhat", "Sharrisir", "Kisri",
	},
	board.BiomeForest: {
		"Kalshara", "Mora Caelora", "Yam Ennore", "Uyla Themar", "Nelrenqua",
		"Caranlian", "Osaenamel", "Elhamel", "Allenrion", "Nilathaes",
	},
	board.BiomeSea: {
		"Natanas", "Tempetia", "Leviarey", "Atlalis", "Neptulean", "Oceacada",
		"Naurus", "Hylore", "Expathis", "Liquasa",
	},
	board.BiomeMountain: {
		"Nem Tarhir", "Dharnturm", "Hun Thurum", "Vil Tarum", "Khurn Kuldihr",
		"Hildarim", "Gog Daruhl", "Vogguruhm", "Dhighthiod", "Malwihr",
	},
}

// Namer hands out settlement names from per-biome pools, never repeating a
// name until Reset restocks the pools.
type Namer struct {
	rng   *rand.Rand
	pools map[board.Biome][]string
}

// NewNamer creates a namer drawing from the standard name pools.
func NewNamer(rng *rand.Rand) *Namer {
	n := &Namer{rng: rng}
	n.Reset()
	return n
}

// GetName removes and returns a random name suited to the given biome. Once
// a biome's pool is empty it falls back to any non-empty pool, so a name is
// always produced.
func (n *Namer) GetName(biome board.Biome) string {
	pool := n.pools[biome]
	if len(pool) == 0 {
		for _, b := range board.Biomes {
			if len(n.pools[b]) > 0 {
				biome, pool = b, n.pools[b]
				break
			}
		}
	}
	if len(pool) == 0 {
		return "Nemeth"
	}
	i := n.rng.Intn(len(pool))
	name := pool[i]
	n.pools[biome] = append(pool[:i], pool[i+1:]...)
	return name
}

// RemoveName takes a specific name out of circulation, for settlements whose
// names were assigned elsewhere.
func (n *Namer) RemoveName(name string) {
	for biome, pool := range n.pools {
		for i, candidate := range pool {
			if candidate == name {
				n.pools[biome] = append(pool[:i], pool[i+1:]...)
				return
			}
		}
	}
}

// Reset restocks every pool.
func (n *Namer) Reset() {
	n.pools = make(map[board.Biome][]string, len(settlementNames))
	for biome, names := range settlementNames {
		n.pools[biome] = append([]string(nil), names...)
	}
}
