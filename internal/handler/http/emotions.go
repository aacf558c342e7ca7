package http

import (
	"github.com/moodlog/mood-journal/internal/emotions"
	"github.com/moodlog/mood-journal/models"
)

// emotionQuadrantGroup is one quadrant's slice of the catalog as served by
// GET /api/emotions, with the localized labels clients render as headings.
type emotionQuadrantGroup struct {
	Quadrant models.Quadrant  `json:"quadrant"`
	Title    string           `json:"title"`
	Color    string           `json:"color"`
	Emotions []models.Emotion `json:"emotions"`
}

// emotionsCatalog returns the full taxonomy grouped by quadrant in canonical
// order. The catalog is immutable, so the response is the same for every
// caller.
func emotionsCatalog() []emotionQuadrantGroup {
	quadrants := models.Quadrants()

	groups := make([]emotionQuadrantGroup, 0, len(quadrants))
	for _, q := range quadrants {
		groups = append(groups, emotionQuadrantGroup{
			Quadrant: q,
			Title:    emotions.QuadrantTitle(q),
			Color:    emotions.QuadrantColorName(q),
			Emotions: emotions.ByQuadrant(q),
		})
	}

	return groups
}
