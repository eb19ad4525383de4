package classifier

import (
	"github.com/dtnitsch/section-mapper/models"
	"github.com/dtnitsch/section-mapper/pkg/catalog"
)

type variantFunc func(models.Section) string

func fixed(v string) variantFunc {
	return func(models.Section) string { return v }
}

var variantTable = map[models.Archetype]variantFunc{
	models.ArchetypeHero: func(s models.Section) string {
		switch h := s.Rect.Height; {
		case h > 700:
			return "full-bleed-overlay"
		case h > 500:
			return "split-image"
		default:
			return "centered"
		}
	},
	models.ArchetypeFooter: func(s models.Section) string {
		if s.Rect.Height > 300 {
			return "mega"
		}
		return "minimal"
	},
	models.ArchetypeNav: func(s models.Section) string {
		if s.Rect.Height > 120 {
			return "mega-menu"
		}
		return "standard"
	},
	models.ArchetypePricing:      fixed("three-tier"),
	models.ArchetypeTestimonials: fixed("card-grid"),
	models.ArchetypeFeatures:     fixed("icon-grid"),
	models.ArchetypeFAQ:          fixed("accordion"),
	models.ArchetypeLogoBar:      fixed("static-row"),
	models.ArchetypeStats:        fixed("counter-row"),
	models.ArchetypeHowItWorks:   fixed("numbered-steps"),
	models.ArchetypeCTA:          fixed("banner"),
	models.ArchetypeNewsletter:   fixed("inline-form"),
	models.ArchetypeTeam:         fixed("portrait-grid"),
	models.ArchetypeBlogPreview:  fixed("card-grid"),
	models.ArchetypeContact:      fixed("form"),
}

// SelectVariant picks the layout variant for a classified section. Archetypes
// without a rule, and picks the catalog does not allow, use the catalog's
// first declared variant.
func SelectVariant(cat *catalog.Catalog, a models.Archetype, s models.Section) string {
	if pick, ok := variantTable[a]; ok {
		if v := pick(s); cat.HasVariant(a, v) {
			return v
		}
	}
	return cat.FirstVariant(a)
}
