package models

// QuadrantCounts holds per-quadrant emotion occurrence totals.
type QuadrantCounts struct {
	Red    int `json:"red"`
	Yellow int `json:"yellow"`
	Green  int `json:"green"`
	Blue   int `json:"blue"`
}

// Get returns the count stored for q. Unknown quadrants count as zero.
func (c QuadrantCounts) Get(q Quadrant) int {
	switch q {
	case QuadrantRed:
		return c.Red
	case QuadrantYellow:
		return c.Yellow
	case QuadrantGreen:
		return c.Green
	case QuadrantBlue:
		return c.Blue
	}
	return 0
}

// Add increments the count stored for q by one.
func (c *QuadrantCounts) Add(q Quadrant) {
	switch q {
	case QuadrantRed:
		c.Red++
	case QuadrantYellow:
		c.Yellow++
	case QuadrantGreen:
		c.Green++
	case QuadrantBlue:
		c.Blue++
	}
}

// Total returns the sum over all four quadrants.
func (c QuadrantCounts) Total() int {
	return c.Red + c.Yellow + c.Green + c.Blue
}

// TrendPoint is one day of the daily trend series.
type TrendPoint struct {
	Date string `json:"date"`
	QuadrantCounts
}

// LabelCount is an (emotion label, occurrence count) pair produced by
// top-emotion ranking.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ReportCard summarizes a reporting window for one identity or for the whole
// class: totals, distribution, dominant quadrant, top emotions and the 7-day
// trend ending at the window's end date.
type ReportCard struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	// RecordCount is the number of records whose date falls in the window.
	RecordCount int `json:"record_count"`

	// EmotionCount is the number of emotion occurrences in those records.
	EmotionCount int `json:"emotion_count"`

	Counts QuadrantCounts `json:"counts"`

	// Percentages holds the rounded integer share of each quadrant.
	Percentages QuadrantCounts `json:"percentages"`

	// Dominant is the quadrant with the highest count over the window.
	Dominant Quadrant `json:"dominant"`

	TopEmotions []LabelCount `json:"top_emotions"`

	Trend []TrendPoint `json:"trend"`
}
