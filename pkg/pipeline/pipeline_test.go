package pipeline_test

import (
	"strings"
	"testing"

	"github.com/dtnitsch/section-mapper/models"
	"github.com/dtnitsch/section-mapper/pkg/catalog"
	"github.com/dtnitsch/section-mapper/pkg/pipeline"
	"github.com/dtnitsch/section-mapper/pkg/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const landingPage = `<html><head><title>Great Coffee</title></head>
<body data-page-height="1830">
  <nav data-y="0" data-height="80" data-width="1280">
    <a href="/" data-y="20" data-height="20">Home</a>
  </nav>
  <header data-y="80" data-height="600" data-width="1280">
    <h1 data-y="200" data-height="60" style="color: #222">Great Coffee</h1>
    <p data-y="280" data-height="40">Roasted daily.</p>
    <img src="/cup.png" data-y="340" data-height="300" data-width="400">
  </header>
  <div class="pricing-plans" data-y="680" data-height="900" data-width="1280">
    <p data-y="700" data-height="20">Basic $9</p>
    <p data-y="740" data-height="20">Pro $19</p>
  </div>
  <footer data-y="1580" data-height="250" data-width="1280">
    <p data-y="1600" data-height="20">© Coffee</p>
  </footer>
</body></html>`

func inputFrom(t *testing.T, html string) pipeline.Input {
	t.Helper()
	s, err := snapshot.FromHTML(strings.NewReader(html), 0)
	require.NoError(t, err)
	return pipeline.Input{
		Root:       s.Container(),
		PageHeight: s.PageHeight,
		Styles:     s.Styles,
		Texts:      s.Texts,
		Images:     s.Images,
	}
}

func TestRunLandingPage(t *testing.T) {
	res, err := pipeline.Run(inputFrom(t, landingPage), pipeline.Config{Settings: catalog.Defaults()})
	require.NoError(t, err)

	require.Len(t, res.Sections, 4)
	require.Len(t, res.Gated.Sections, 4)

	want := []struct {
		archetype  models.Archetype
		variant    string
		confidence float64
		method     models.Method
	}{
		{models.ArchetypeNav, "standard", 0.90, models.MethodTag},
		{models.ArchetypeHero, "split-image", 0.90, models.MethodTag},
		{models.ArchetypePricing, "three-tier", 0.75, models.MethodHeadingKeyword},
		{models.ArchetypeFooter, "minimal", 0.90, models.MethodTag},
	}
	for i, w := range want {
		g := res.Gated.Sections[i]
		assert.Equal(t, i, g.Index)
		assert.Equal(t, w.archetype, g.Archetype, "section %d", i)
		assert.Equal(t, w.variant, g.Variant, "section %d", i)
		assert.InDelta(t, w.confidence, g.Confidence, 1e-9, "section %d", i)
		assert.Equal(t, w.method, g.Method, "section %d", i)
		assert.Equal(t, models.TierHigh, g.ConfidenceTier, "section %d", i)
	}

	assert.Equal(t, 4, res.Gated.Stats.Total)
	assert.Equal(t, 4, res.Gated.Stats.High)
	assert.Empty(t, res.Gated.NeedsReanalysis)
}

func TestRunAssignsEntities(t *testing.T) {
	res, err := pipeline.Run(inputFrom(t, landingPage), pipeline.Config{Settings: catalog.Defaults()})
	require.NoError(t, err)

	texts := res.Assignments.Texts
	assert.Equal(t, 1, texts.Count(0))
	assert.Equal(t, 2, texts.Count(1))
	assert.Equal(t, 2, texts.Count(2))
	assert.Equal(t, 1, texts.Count(3))
	assert.Empty(t, texts.Unassigned)

	assert.Equal(t, 1, res.Assignments.Images.Count(1))
	assert.Equal(t, 1, res.Assignments.Styles.Count(1))
}

func TestRunSectionAfterNav(t *testing.T) {
	page := `<body data-page-height="1000">
  <nav data-y="0" data-height="80"></nav>
  <section data-y="80" data-height="600"><h2 data-y="100" data-height="40">Welcome</h2></section>
  <footer data-y="680" data-height="320"></footer>
</body>`

	res, err := pipeline.Run(inputFrom(t, page), pipeline.Config{Settings: catalog.Defaults()})
	require.NoError(t, err)
	require.Len(t, res.Gated.Sections, 3)

	hero := res.Gated.Sections[1]
	assert.Equal(t, models.ArchetypeHero, hero.Archetype)
	assert.Equal(t, models.MethodPositionAfterNav, hero.Method)
	assert.InDelta(t, 0.60, hero.Confidence, 1e-9)
	assert.Equal(t, models.TierMedium, hero.ConfidenceTier)

	footer := res.Gated.Sections[2]
	assert.Equal(t, "mega", footer.Variant)
}

func TestRunEmptyPage(t *testing.T) {
	res, err := pipeline.Run(pipeline.Input{}, pipeline.Config{Settings: catalog.Defaults()})
	require.NoError(t, err)
	assert.Empty(t, res.Sections)
	assert.Empty(t, res.Gated.Sections)
	assert.Zero(t, res.Gated.Stats.Total)
}

func TestRunRequiresSettings(t *testing.T) {
	_, err := pipeline.Run(pipeline.Input{}, pipeline.Config{})
	assert.ErrorIs(t, err, pipeline.ErrNoSettings)

	bad := catalog.Defaults()
	bad.MinConfidence = 2
	_, err = pipeline.Run(pipeline.Input{}, pipeline.Config{Settings: bad})
	assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
}
