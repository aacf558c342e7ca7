package models

// Quadrant is one of the four mood-meter categories formed by crossing the
// energy and pleasantness axes.
type Quadrant string

const (
	QuadrantRed    Quadrant = "red"    // high energy, low pleasantness
	QuadrantYellow Quadrant = "yellow" // high energy, high pleasantness
	QuadrantGreen  Quadrant = "green"  // low energy, high pleasantness
	QuadrantBlue   Quadrant = "blue"   // low energy, low pleasantness
)

// Quadrants returns the four quadrants in their canonical order.
// All iteration in aggregation code follows this order, which also defines
// the tie-break priority when counts are equal.
func Quadrants() [4]Quadrant {
	return [4]Quadrant{QuadrantRed, QuadrantYellow, QuadrantGreen, QuadrantBlue}
}

// Valid reports whether q is one of the four known quadrants.
func (q Quadrant) Valid() bool {
	switch q {
	case QuadrantRed, QuadrantYellow, QuadrantGreen, QuadrantBlue:
		return true
	}
	return false
}

// Energy is the arousal axis of the mood meter.
type Energy string

// Pleasantness is the valence axis of the mood meter.
type Pleasantness string

const (
	EnergyHigh Energy = "high"
	EnergyLow  Energy = "low"

	PleasantnessHigh Pleasantness = "high"
	PleasantnessLow  Pleasantness = "low"
)

// DeriveQuadrant maps a point on the two axes to its quadrant:
// (high, low) → red, (high, high) → yellow, (low, high) → green,
// (low, low) → blue.
func DeriveQuadrant(energy Energy, pleasantness Pleasantness) Quadrant {
	if energy == EnergyHigh {
		if pleasantness == PleasantnessHigh {
			return QuadrantYellow
		}
		return QuadrantRed
	}
	if pleasantness == PleasantnessHigh {
		return QuadrantGreen
	}
	return QuadrantBlue
}

// Emotion is a single catalog entry of the mood-meter taxonomy.
//
// Entries are defined once at process start and never mutated. Quadrant is
// derived from (Energy, Pleasantness) by the catalog constructor and is never
// accepted as independent input, so a catalog entry whose stored quadrant
// disagrees with its axes cannot be built.
type Emotion struct {
	// ID is the stable slug identifying the emotion across the catalog.
	ID string `json:"id"`

	// Korean is the localized display label shown to students.
	Korean string `json:"korean"`

	// English is the reference label.
	English string `json:"english"`

	// Quadrant is the derived classification of the emotion.
	Quadrant Quadrant `json:"quadrant"`

	// Energy is the arousal level of the emotion.
	Energy Energy `json:"energy"`

	// Pleasantness is the valence of the emotion.
	Pleasantness Pleasantness `json:"pleasantness"`
}

// Snapshot returns the denormalized copy of the emotion that is embedded in a
// journal record at write time. Historical records keep their snapshot even if
// the catalog changes in a later release.
func (e Emotion) Snapshot() EmotionSnapshot {
	return EmotionSnapshot{
		ID:       e.ID,
		Korean:   e.Korean,
		English:  e.English,
		Quadrant: e.Quadrant,
	}
}

// EmotionSnapshot is the per-record copy of a selected emotion.
type EmotionSnapshot struct {
	ID       string   `json:"id"`
	Korean   string   `json:"korean"`
	English  string   `json:"english"`
	Quadrant Quadrant `json:"quadrant"`
}
