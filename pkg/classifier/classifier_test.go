package classifier

import (
	"testing"

	"github.com/dtnitsch/section-mapper/models"
	"github.com/dtnitsch/section-mapper/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sec(index int, tag string, y, h float64) models.Section {
	return models.Section{Index: index, Tag: tag, Rect: models.Rect{Y: y, Height: h}}
}

func defaultClassifier() *Classifier {
	return New(catalog.Defaults())
}

func TestTagSignalBeatsHeadingKeyword(t *testing.T) {
	nav := sec(0, "nav", 0, 80)
	nav.Label = "Pricing"
	nav.Content.Headings = []string{"Pricing"}

	got := defaultClassifier().ClassifyAll([]models.Section{nav, sec(1, "div", 80, 400)}, []models.TextEntity{
		{Tag: "h2", Text: "Pricing", Y: 10, Height: 20},
	})

	assert.Equal(t, models.ArchetypeNav, got[0].Archetype)
	assert.Equal(t, 0.90, got[0].Confidence)
	assert.Equal(t, models.MethodTag, got[0].Method)
}

func TestSignalCascade(t *testing.T) {
	withRole := sec(2, "div", 0, 200)
	withRole.Role = "contentinfo"

	labelled := sec(2, "section", 0, 300)
	labelled.Label = "Customer Reviews"

	classed := sec(2, "div", 0, 900)
	classed.ClassNames = []string{"pricing-plans", "container"}

	byID := sec(2, "div", 0, 400)
	byID.ID = "faq"

	plain := sec(2, "div", 1000, 400)

	tests := []struct {
		name    string
		in      Input
		want    models.Archetype
		conf    float64
		method  models.Method
		wantVar string
	}{
		{
			name: "header tag", in: Input{Section: sec(3, "header", 0, 750), Position: 3, Total: 6},
			want: models.ArchetypeHero, conf: 0.90, method: models.MethodTag, wantVar: "full-bleed-overlay",
		},
		{
			name: "footer tag", in: Input{Section: sec(0, "footer", 0, 350), Position: 0, Total: 6},
			want: models.ArchetypeFooter, conf: 0.90, method: models.MethodTag, wantVar: "mega",
		},
		{
			name: "role", in: Input{Section: withRole, Position: 2, Total: 6},
			want: models.ArchetypeFooter, conf: 0.85, method: models.MethodRole, wantVar: "minimal",
		},
		{
			name: "label keyword", in: Input{Section: labelled, Position: 2, Total: 6},
			want: models.ArchetypeTestimonials, conf: 0.75, method: models.MethodHeadingKeyword, wantVar: "card-grid",
		},
		{
			name: "class keyword", in: Input{Section: classed, Position: 2, Total: 6},
			want: models.ArchetypePricing, conf: 0.75, method: models.MethodHeadingKeyword, wantVar: "three-tier",
		},
		{
			name: "id keyword", in: Input{Section: byID, Position: 2, Total: 6},
			want: models.ArchetypeFAQ, conf: 0.75, method: models.MethodHeadingKeyword, wantVar: "accordion",
		},
		{
			name: "text content keyword",
			in: Input{Section: plain, Position: 2, Total: 6, Texts: []models.TextEntity{
				{Tag: "p", Text: "pricing", Y: 1100, Height: 20},
				{Tag: "h3", Text: "Our Team", Y: 900, Height: 30},
				{Tag: "h2", Text: "Frequently Asked Questions", Y: 1050, Height: 40},
			}},
			want: models.ArchetypeFAQ, conf: 0.70, method: models.MethodTextContentKeyword, wantVar: "accordion",
		},
		{
			name: "first position", in: Input{Section: sec(0, "div", 0, 600), Position: 0, Total: 6},
			want: models.ArchetypeHero, conf: 0.50, method: models.MethodPositionFirst, wantVar: "split-image",
		},
		{
			name: "last position", in: Input{Section: sec(5, "div", 0, 200), Position: 5, Total: 6},
			want: models.ArchetypeFooter, conf: 0.50, method: models.MethodPositionLast, wantVar: "minimal",
		},
		{
			name: "after nav",
			in: Input{Section: sec(1, "section", 80, 400), Position: 1, Total: 6, Prior: []models.MappedSection{
				{Section: sec(0, "div", 0, 80), Archetype: models.ArchetypeNav},
			}},
			want: models.ArchetypeHero, conf: 0.60, method: models.MethodPositionAfterNav, wantVar: "centered",
		},
		{
			name: "after hero is not special",
			in: Input{Section: sec(1, "section", 600, 400), Position: 1, Total: 6, Prior: []models.MappedSection{
				{Section: sec(0, "div", 0, 600), Archetype: models.ArchetypeHero},
			}},
			want: models.ArchetypeFeatures, conf: 0.30, method: models.MethodFallback, wantVar: "icon-grid",
		},
		{
			name: "fallback", in: Input{Section: plain, Position: 3, Total: 6},
			want: models.ArchetypeFeatures, conf: 0.30, method: models.MethodFallback, wantVar: "icon-grid",
		},
	}

	c := defaultClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.in)
			assert.Equal(t, tt.want, got.Archetype)
			assert.Equal(t, tt.conf, got.Confidence)
			assert.Equal(t, tt.method, got.Method)
			assert.Equal(t, tt.wantVar, got.Variant)
			assert.Equal(t, tt.in.Section.Index, got.Index)
		})
	}
}

func TestClassifyAllPositionRules(t *testing.T) {
	sections := []models.Section{
		sec(0, "div", 0, 80),
		sec(1, "div", 80, 500),
		sec(2, "div", 580, 400),
		sec(3, "div", 980, 200),
	}
	got := defaultClassifier().ClassifyAll(sections, nil)
	require.Len(t, got, 4)

	// First non-nav section is a HERO, so index 1 does not get the after-nav rule.
	assert.Equal(t, models.ArchetypeHero, got[0].Archetype)
	assert.Equal(t, models.MethodPositionFirst, got[0].Method)
	assert.Equal(t, models.MethodFallback, got[1].Method)
	assert.Equal(t, models.MethodFallback, got[2].Method)
	assert.Equal(t, models.ArchetypeFooter, got[3].Archetype)
	assert.Equal(t, models.MethodPositionLast, got[3].Method)
}

func TestClassifyAllDoesNotMutateInput(t *testing.T) {
	sections := []models.Section{sec(0, "nav", 0, 80)}
	defaultClassifier().ClassifyAll(sections, nil)
	assert.Equal(t, "nav", sections[0].Tag)
	assert.Empty(t, sections[0].Label)
}

func TestSelectVariant(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name string
		a    models.Archetype
		h    float64
		want string
	}{
		{name: "hero tall", a: models.ArchetypeHero, h: 701, want: "full-bleed-overlay"},
		{name: "hero at 700", a: models.ArchetypeHero, h: 700, want: "split-image"},
		{name: "hero medium", a: models.ArchetypeHero, h: 501, want: "split-image"},
		{name: "hero short", a: models.ArchetypeHero, h: 500, want: "centered"},
		{name: "footer mega", a: models.ArchetypeFooter, h: 301, want: "mega"},
		{name: "footer minimal", a: models.ArchetypeFooter, h: 300, want: "minimal"},
		{name: "canonical", a: models.ArchetypePricing, h: 900, want: "three-tier"},
		{name: "no rule uses first variant", a: models.ArchetypeGallery, h: 900, want: "grid"},
		{name: "unknown archetype", a: "MYSTERY", h: 100, want: "standard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectVariant(cat, tt.a, models.Section{Rect: models.Rect{Height: tt.h}})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectVariantRespectsAlternateCatalog(t *testing.T) {
	cat, err := catalog.New([]catalog.Entry{
		{Name: models.ArchetypeHero, Variants: []string{"video-backdrop"}},
	})
	require.NoError(t, err)

	got := SelectVariant(cat, models.ArchetypeHero, models.Section{Rect: models.Rect{Height: 900}})
	assert.Equal(t, "video-backdrop", got)
}

func TestCustomSignals(t *testing.T) {
	cat := catalog.Default()
	onlyVideo := []Signal{{
		Method:     models.MethodTag,
		Confidence: 0.95,
		Resolve: func(in Input) (models.Archetype, bool) {
			return models.ArchetypeVideo, in.Section.Tag == "video"
		},
	}}
	c := NewWithSignals(cat, models.ArchetypeFeatures, onlyVideo)

	got := c.Classify(Input{Section: sec(0, "video", 0, 400), Total: 2})
	assert.Equal(t, models.ArchetypeVideo, got.Archetype)
	assert.Equal(t, 0.95, got.Confidence)

	miss := c.Classify(Input{Section: sec(1, "div", 0, 400), Position: 1, Total: 2})
	assert.Equal(t, models.ArchetypeFeatures, miss.Archetype)
	assert.Equal(t, 0.0, miss.Confidence)
	assert.Equal(t, models.MethodFallback, miss.Method)
}
