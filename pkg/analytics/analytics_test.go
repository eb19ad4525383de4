package analytics

import (
	"testing"

	"github.com/dtnitsch/section-mapper/models"
	"github.com/stretchr/testify/assert"
)

func TestWordFrequency(t *testing.T) {
	got := WordFrequency("The Coffee, the BEANS and coffee! Click here: a 2024 roast.")
	assert.Equal(t, map[string]int{"coffee": 2, "beans": 1, "2024": 1, "roast": 1}, got)
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("The"))
	assert.True(t, IsStopword("menu"))
	assert.False(t, IsStopword("pricing"))
}

func TestTopKeywords(t *testing.T) {
	counts := map[string]int{"plans": 3, "coffee": 5, "beans": 3, "roast": 1}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{name: "top two", n: 2, want: []string{"coffee:5", "beans:3"}},
		{name: "ties alphabetical", n: 3, want: []string{"coffee:5", "beans:3", "plans:3"}},
		{name: "more than available", n: 10, want: []string{"coffee:5", "beans:3", "plans:3", "roast:1"}},
		{name: "zero", n: 0, want: []string{}},
		{name: "negative", n: -1, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TopKeywords(counts, tt.n))
		})
	}
}

func TestPageKeywords(t *testing.T) {
	sections := []models.Section{
		{Content: models.SectionContent{Headings: []string{"Coffee plans"}, BodyText: []string{"Monthly coffee"}}},
		{Content: models.SectionContent{BodyText: []string{"Plans for every coffee drinker"}}},
		{},
	}
	assert.Equal(t, []string{"coffee:3", "plans:2"}, PageKeywords(sections, 2))
	assert.Equal(t, map[string]int{"coffee": 2, "plans": 1, "monthly": 1}, Map(sections[0]))
	assert.Empty(t, Map(sections[2]))
}
