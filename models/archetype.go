package models

// Archetype labels the communicative role of a page section.
type Archetype string

const (
	ArchetypeNav             Archetype = "NAV"
	ArchetypeAnnouncementBar Archetype = "ANNOUNCEMENT-BAR"
	ArchetypeFooter          Archetype = "FOOTER"
	ArchetypeHero            Archetype = "HERO"
	ArchetypeLogoBar         Archetype = "LOGO-BAR"
	ArchetypeTestimonials    Archetype = "TESTIMONIALS"
	ArchetypeStats           Archetype = "STATS"
	ArchetypeTrustBadges     Archetype = "TRUST-BADGES"
	ArchetypeFeatures        Archetype = "FEATURES"
	ArchetypeHowItWorks      Archetype = "HOW-IT-WORKS"
	ArchetypeComparison      Archetype = "COMPARISON"
	ArchetypePricing         Archetype = "PRICING"
	ArchetypeCTA             Archetype = "CTA"
	ArchetypeNewsletter      Archetype = "NEWSLETTER"
	ArchetypeAbout           Archetype = "ABOUT"
	ArchetypeTeam            Archetype = "TEAM"
	ArchetypeFAQ             Archetype = "FAQ"
	ArchetypeProductShowcase Archetype = "PRODUCT-SHOWCASE"
	ArchetypePortfolio       Archetype = "PORTFOLIO"
	ArchetypeBlogPreview     Archetype = "BLOG-PREVIEW"
	ArchetypeVideo           Archetype = "VIDEO"
	ArchetypeGallery         Archetype = "GALLERY"
	ArchetypeContact         Archetype = "CONTACT"
	ArchetypeAppDownload     Archetype = "APP-DOWNLOAD"
	ArchetypeIntegrations    Archetype = "INTEGRATIONS"
)

// Method records which classification signal produced an archetype.
type Method string

const (
	MethodTag                Method = "tag"
	MethodRole               Method = "role"
	MethodHeadingKeyword     Method = "heading-keyword"
	MethodTextContentKeyword Method = "text-content-keyword"
	MethodPositionFirst      Method = "position-first"
	MethodPositionLast       Method = "position-last"
	MethodPositionAfterNav   Method = "position-after-nav"
	MethodFallback           Method = "fallback"
)

// MappedSection is a Section with its classification attached.
type MappedSection struct {
	Section    `yaml:",inline"`
	Archetype  Archetype `json:"archetype" yaml:"archetype"`
	Variant    string    `json:"variant" yaml:"variant"`
	Confidence float64   `json:"confidence" yaml:"confidence"`
	Method     Method    `json:"method" yaml:"method"`
}
