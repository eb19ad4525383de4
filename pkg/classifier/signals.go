package classifier

import (
	"strings"

	"github.com/dtnitsch/section-mapper/models"
	"github.com/dtnitsch/section-mapper/pkg/catalog"
)

// Input is everything a signal may look at when classifying one section.
type Input struct {
	Section models.Section
	// Position is the section's index in the list being classified.
	Position int
	// Total is the length of that list.
	Total int
	// Prior holds the sections already classified, in order.
	Prior []models.MappedSection
	// Texts are page-level text entities; signals filter them to this
	// section's rect themselves.
	Texts []models.TextEntity
}

// previous returns the archetype of the section classified just before this one.
func (in Input) previous() (models.Archetype, bool) {
	if len(in.Prior) == 0 {
		return "", false
	}
	return in.Prior[len(in.Prior)-1].Archetype, true
}

// Signal is one step of the classification cascade. Resolve reports the
// archetype it detects, if any; Confidence and Method are attached to the
// result when it matches.
type Signal struct {
	Method     models.Method
	Confidence float64
	Resolve    func(in Input) (models.Archetype, bool)
}

var (
	tagArchetypes = map[string]models.Archetype{
		"nav":    models.ArchetypeNav,
		"header": models.ArchetypeHero,
		"footer": models.ArchetypeFooter,
	}
	roleArchetypes = map[string]models.Archetype{
		"navigation":  models.ArchetypeNav,
		"banner":      models.ArchetypeHero,
		"contentinfo": models.ArchetypeFooter,
	}
)

// DefaultSignals returns the standard cascade, strongest evidence first.
// The final signal always matches, so every section gets an archetype.
func DefaultSignals(keywords catalog.KeywordTable, fallback models.Archetype) []Signal {
	return []Signal{
		{Method: models.MethodTag, Confidence: 0.90, Resolve: byTag},
		{Method: models.MethodRole, Confidence: 0.85, Resolve: byRole},
		{Method: models.MethodHeadingKeyword, Confidence: 0.75, Resolve: byHeadingKeyword(keywords)},
		{Method: models.MethodTextContentKeyword, Confidence: 0.70, Resolve: byTextContentKeyword(keywords)},
		{Method: models.MethodPositionFirst, Confidence: 0.50, Resolve: firstPosition},
		{Method: models.MethodPositionLast, Confidence: 0.50, Resolve: lastPosition},
		{Method: models.MethodPositionAfterNav, Confidence: 0.60, Resolve: afterNav},
		{Method: models.MethodFallback, Confidence: 0.30, Resolve: always(fallback)},
	}
}

func byTag(in Input) (models.Archetype, bool) {
	a, ok := tagArchetypes[strings.ToLower(in.Section.Tag)]
	return a, ok
}

func byRole(in Input) (models.Archetype, bool) {
	a, ok := roleArchetypes[strings.ToLower(in.Section.Role)]
	return a, ok
}

// byHeadingKeyword matches the section label first, then its id and class
// names, which often carry the only hint on unlabelled containers.
func byHeadingKeyword(keywords catalog.KeywordTable) func(Input) (models.Archetype, bool) {
	return func(in Input) (models.Archetype, bool) {
		if a, ok := keywords.Match(in.Section.Label); ok {
			return a, true
		}
		if a, ok := keywords.Match(in.Section.ID); ok {
			return a, true
		}
		return keywords.Match(strings.Join(in.Section.ClassNames, " "))
	}
}

func byTextContentKeyword(keywords catalog.KeywordTable) func(Input) (models.Archetype, bool) {
	return func(in Input) (models.Archetype, bool) {
		rect := in.Section.Rect
		for _, t := range in.Texts {
			if !t.IsHeading() || !rect.ContainsSpan(t.Y, t.Height) {
				continue
			}
			if a, ok := keywords.Match(t.Text); ok {
				return a, true
			}
		}
		return "", false
	}
}

func firstPosition(in Input) (models.Archetype, bool) {
	if in.Position != 0 {
		return "", false
	}
	if strings.ToLower(in.Section.Tag) == "nav" {
		return models.ArchetypeNav, true
	}
	return models.ArchetypeHero, true
}

func lastPosition(in Input) (models.Archetype, bool) {
	if in.Total == 0 || in.Position != in.Total-1 {
		return "", false
	}
	return models.ArchetypeFooter, true
}

// afterNav only fires for the second section following a NAV. A HERO in
// first position does not trigger it.
func afterNav(in Input) (models.Archetype, bool) {
	if in.Position != 1 {
		return "", false
	}
	if prev, ok := in.previous(); ok && prev == models.ArchetypeNav {
		return models.ArchetypeHero, true
	}
	return "", false
}

func always(a models.Archetype) func(Input) (models.Archetype, bool) {
	return func(Input) (models.Archetype, bool) {
		return a, true
	}
}
