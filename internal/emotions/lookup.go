package emotions

import "github.com/moodlog/mood-journal/models"

var (
	all  []models.Emotion
	byID map[string]models.Emotion
)

func init() {
	all = make([]models.Emotion, 0, len(redEmotions)+len(yellowEmotions)+len(greenEmotions)+len(blueEmotions))
	all = append(all, redEmotions...)
	all = append(all, yellowEmotions...)
	all = append(all, greenEmotions...)
	all = append(all, blueEmotions...)

	byID = make(map[string]models.Emotion, len(all))
	for _, e := range all {
		if _, dup := byID[e.ID]; !dup {
			byID[e.ID] = e
		}
	}
}

// All returns the full catalog in canonical order: the red, yellow, green and
// blue quadrant lists concatenated. The returned slice is shared; callers must
// not modify it.
func All() []models.Emotion {
	return all
}

// ByID returns the catalog entry with the given slug.
func ByID(id string) (models.Emotion, bool) {
	e, ok := byID[id]
	return e, ok
}

// ByQuadrant returns the catalog entries of a single quadrant, in catalog
// order. The result is nil for an unknown quadrant. The returned slice is
// shared; callers must not modify it.
func ByQuadrant(q models.Quadrant) []models.Emotion {
	switch q {
	case models.QuadrantRed:
		return redEmotions
	case models.QuadrantYellow:
		return yellowEmotions
	case models.QuadrantGreen:
		return greenEmotions
	case models.QuadrantBlue:
		return blueEmotions
	}
	return nil
}

// QuadrantTitle returns the localized axis description of a quadrant, e.g.
// "고에너지-불쾌" for red. Used by report cards and summarizer prompts.
func QuadrantTitle(q models.Quadrant) string {
	switch q {
	case models.QuadrantRed:
		return "고에너지-불쾌"
	case models.QuadrantYellow:
		return "고에너지-유쾌"
	case models.QuadrantGreen:
		return "저에너지-유쾌"
	case models.QuadrantBlue:
		return "저에너지-불쾌"
	}
	return ""
}

// QuadrantColorName returns the localized color name of a quadrant, e.g.
// "빨강" for red.
func QuadrantColorName(q models.Quadrant) string {
	switch q {
	case models.QuadrantRed:
		return "빨강"
	case models.QuadrantYellow:
		return "노랑"
	case models.QuadrantGreen:
		return "초록"
	case models.QuadrantBlue:
		return "파랑"
	}
	return ""
}
