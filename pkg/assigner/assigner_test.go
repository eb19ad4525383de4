package assigner

import (
	"testing"

	"github.com/dtnitsch/section-mapper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func section(index int, y, h float64) models.Section {
	return models.Section{Index: index, Rect: models.Rect{Y: y, Height: h}}
}

func TestAssignPrefersSmallestContainingSection(t *testing.T) {
	sections := []models.Section{
		section(0, 0, 2000),
		section(1, 100, 200),
	}
	a := New(sections)

	idx, ok := a.Assign(Point(150))
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	idx, ok = a.Assign(Span{Y: 1000, Height: 40})
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestAssignUsesMidpoint(t *testing.T) {
	a := New([]models.Section{section(0, 0, 100), section(1, 100, 100)})

	// Starts in section 0 but its midpoint (140) falls in section 1.
	idx, ok := a.Assign(Span{Y: 90, Height: 100})
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestAssignTiesKeepDocumentOrder(t *testing.T) {
	// Two equal-height sections share the boundary at y=100.
	a := New([]models.Section{section(0, 0, 100), section(1, 100, 100)})

	idx, ok := a.Assign(Point(100))
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestAssignUnassigned(t *testing.T) {
	a := New([]models.Section{section(0, 0, 100)})

	idx, ok := a.Assign(Point(500))
	assert.False(t, ok)
	assert.Equal(t, Unassigned, idx)

	empty := New(nil)
	_, ok = empty.Assign(Point(0))
	assert.False(t, ok)
}

func TestAssignAll(t *testing.T) {
	a := New([]models.Section{section(0, 0, 1000), section(1, 200, 100), section(2, 250, 20)})

	got := a.AssignAll([]Span{Point(10), Point(210), Point(260), Point(5000)})
	assert.Equal(t, []int{0, 1, 2, Unassigned}, got)
}

func TestNewDoesNotReorderInput(t *testing.T) {
	sections := []models.Section{section(0, 0, 900), section(1, 0, 100)}
	New(sections)
	assert.Equal(t, 0, sections[0].Index)
	assert.Equal(t, 900.0, sections[0].Rect.Height)
}

func TestGroupHelpers(t *testing.T) {
	a := New([]models.Section{section(0, 0, 2000), section(1, 100, 200)})

	styles := AssignStyles(a, []models.StyleSample{
		{Selector: "h1", Y: 120, Height: 40},
		{Selector: "p", Y: 900, Height: 20},
		{Selector: "div.outside", Y: 2500, Height: 10},
	})
	assert.Equal(t, 1, styles.Count(0))
	assert.Equal(t, 1, styles.Count(1))
	require.Len(t, styles.Unassigned, 1)
	assert.Equal(t, "div.outside", styles.Unassigned[0].Selector)

	texts := AssignTexts(a, []models.TextEntity{{Tag: "h2", Text: "Plans", Y: 150, Height: 30}})
	assert.Equal(t, "Plans", texts.BySection[1][0].Text)

	images := AssignImages(a, []models.ImageEntity{{Src: "/a.png", Y: 1500}})
	assert.Equal(t, "/a.png", images.BySection[0][0].Src)
	assert.Empty(t, images.Unassigned)
}
