package board

// Biome determines a quad's yield profile.
type Biome int

const (
	BiomeDesert Biome = iota
	BiomeForest
	BiomeSea
	BiomeMountain
)

func (b Biome) String() string {
	switch b {
	case BiomeDesert:
		return "DESERT"
	case BiomeForest:
		return "FOREST"
	case BiomeSea:
		return "SEA"
	case BiomeMountain:
		return "MOUNTAIN"
	}
	return "UNKNOWN"
}

// Biomes lists every biome, in declaration order.
var Biomes = []Biome{BiomeDesert, BiomeForest, BiomeSea, BiomeMountain}

// Loc is a grid position. X runs 0..W-1, Y runs 0..H-1.
type Loc struct {
	X, Y int
}

// ResourceSet counts resources, either on a single quad or aggregated across
// a settlement or player. Ore, timber and magma are the core resources that
// accumulate into player stocks; the rest are rare and presence-based.
type ResourceSet struct {
	Ore        int `yaml:"ore,omitempty"`
	Timber     int `yaml:"timber,omitempty"`
	Magma      int `yaml:"magma,omitempty"`
	Aurora     int `yaml:"aurora,omitempty"`
	Bloodstone int `yaml:"bloodstone,omitempty"`
	Obsidian   int `yaml:"obsidian,omitempty"`
	Sunstone   int `yaml:"sunstone,omitempty"`
	Aquamarine int `yaml:"aquamarine,omitempty"`
}

// Add accumulates another set into this one.
func (r *ResourceSet) Add(other ResourceSet) {
	r.Ore += other.Ore
	r.Timber += other.Timber
	r.Magma += other.Magma
	r.Aurora += other.Aurora
	r.Bloodstone += other.Bloodstone
	r.Obsidian += other.Obsidian
	r.Sunstone += other.Sunstone
	r.Aquamarine += other.Aquamarine
}

// HasCore reports whether the set contains any ore, timber or magma.
func (r ResourceSet) HasCore() bool {
	return r.Ore > 0 || r.Timber > 0 || r.Magma > 0
}

// IsEmpty reports whether the set contains nothing at all.
func (r ResourceSet) IsEmpty() bool {
	return r == ResourceSet{}
}

// CoreCovers reports whether the set can pay the given core-resource cost.
func (r ResourceSet) CoreCovers(cost ResourceSet) bool {
	return r.Ore >= cost.Ore && r.Timber >= cost.Timber && r.Magma >= cost.Magma
}

// DeductCore removes a core-resource cost from the set.
func (r *ResourceSet) DeductCore(cost ResourceSet) {
	r.Ore -= cost.Ore
	r.Timber -= cost.Timber
	r.Magma -= cost.Magma
}

// ResetRare zeroes the rare resources. Rares are presence-based and get
// recounted from deposits every turn, unlike the accumulating core stock.
func (r *ResourceSet) ResetRare() {
	r.Aurora = 0
	r.Bloodstone = 0
	r.Obsidian = 0
	r.Sunstone = 0
	r.Aquamarine = 0
}

// TallyRare counts one of each rare resource the other set holds at all.
// Rares are presence-based: a settlement counts once regardless of how many
// of its quads carry the deposit.
func (r *ResourceSet) TallyRare(other ResourceSet) {
	if other.Aurora > 0 {
		r.Aurora++
	}
	if other.Bloodstone > 0 {
		r.Bloodstone++
	}
	if other.Obsidian > 0 {
		r.Obsidian++
	}
	if other.Sunstone > 0 {
		r.Sunstone++
	}
	if other.Aquamarine > 0 {
		r.Aquamarine++
	}
}

// AddCore accumulates only the core resources from another set.
func (r *ResourceSet) AddCore(other ResourceSet) {
	r.Ore += other.Ore
	r.Timber += other.Timber
	r.Magma += other.Magma
}

// Quad is a single cell of the game board. Yields are fixed at generation
// time; only the relic flag (consumed on investigation) changes afterwards.
type Quad struct {
	Biome     Biome
	Wealth    float64
	Harvest   float64
	Zeal      float64
	Fortune   float64
	Resources ResourceSet
	Relic     bool
	X, Y      int
}

// TotalYield sums the quad's four yield categories.
func (q *Quad) TotalYield() float64 {
	return q.Wealth + q.Harvest + q.Zeal + q.Fortune
}

func (q *Quad) Loc() Loc { return Loc{q.X, q.Y} }
