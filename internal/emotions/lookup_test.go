package emotions

import (
	"testing"

	"github.com/moodlog/mood-journal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSize(t *testing.T) {
	require.Len(t, All(), 100)

	for _, q := range models.Quadrants() {
		assert.Len(t, ByQuadrant(q), 25, "quadrant %s", q)
	}
}

func TestCatalogQuadrantsAreDerived(t *testing.T) {
	for _, e := range All() {
		assert.Equal(t, models.DeriveQuadrant(e.Energy, e.Pleasantness), e.Quadrant,
			"emotion %q stores a quadrant that disagrees with its axes", e.ID)
	}
}

func TestCatalogOrder(t *testing.T) {
	all := All()

	// red ‖ yellow ‖ green ‖ blue, each block in catalog order
	require.Equal(t, "enraged", all[0].ID)
	require.Equal(t, "surprised", all[25].ID)
	require.Equal(t, "atEase", all[50].ID)
	require.Equal(t, "disgusted", all[75].ID)
	require.Equal(t, "drained", all[99].ID)

	// re-listing is deterministic
	assert.Equal(t, all, All())
}

func TestByID(t *testing.T) {
	e, ok := ByID("happy")
	require.True(t, ok)
	assert.Equal(t, "행복한", e.Korean)
	assert.Equal(t, models.QuadrantYellow, e.Quadrant)
	assert.Equal(t, models.EnergyHigh, e.Energy)
	assert.Equal(t, models.PleasantnessHigh, e.Pleasantness)

	_, ok = ByID("no-such-emotion")
	assert.False(t, ok)
}

func TestSnapshotCopiesLabels(t *testing.T) {
	e, ok := ByID("calm")
	require.True(t, ok)

	s := e.Snapshot()
	assert.Equal(t, "calm", s.ID)
	assert.Equal(t, "평온한", s.Korean)
	assert.Equal(t, "Calm", s.English)
	assert.Equal(t, models.QuadrantGreen, s.Quadrant)
}

func TestQuadrantTitles(t *testing.T) {
	assert.Equal(t, "고에너지-불쾌", QuadrantTitle(models.QuadrantRed))
	assert.Equal(t, "고에너지-유쾌", QuadrantTitle(models.QuadrantYellow))
	assert.Equal(t, "저에너지-유쾌", QuadrantTitle(models.QuadrantGreen))
	assert.Equal(t, "저에너지-불쾌", QuadrantTitle(models.QuadrantBlue))
	assert.Equal(t, "빨강", QuadrantColorName(models.QuadrantRed))
}
