package catalog

import "github.com/dtnitsch/section-mapper/models"

// DefaultEntries returns the built-in archetype taxonomy in declared order.
func DefaultEntries() []Entry {
	return []Entry{
		{Name: models.ArchetypeNav, Variants: []string{"standard", "mega-menu", "centered-logo", "transparent-overlay"}, Purpose: "Primary site navigation and brand mark"},
		{Name: models.ArchetypeAnnouncementBar, Variants: []string{"dismissible", "static"}, Purpose: "Thin promotional or status strip above the fold"},
		{Name: models.ArchetypeFooter, Variants: []string{"minimal", "mega"}, Purpose: "Closing links, legal text and contact details"},
		{Name: models.ArchetypeHero, Variants: []string{"centered", "split-image", "full-bleed-overlay"}, Purpose: "Lead headline, value proposition and primary call to action"},
		{Name: models.ArchetypeLogoBar, Variants: []string{"static-row", "marquee"}, Purpose: "Customer or partner logos as social proof"},
		{Name: models.ArchetypeTestimonials, Variants: []string{"card-grid", "carousel", "single-quote"}, Purpose: "Customer quotes and reviews"},
		{Name: models.ArchetypeStats, Variants: []string{"counter-row", "stat-cards"}, Purpose: "Headline numbers and metrics"},
		{Name: models.ArchetypeTrustBadges, Variants: []string{"badge-row"}, Purpose: "Certifications, awards and security seals"},
		{Name: models.ArchetypeFeatures, Variants: []string{"icon-grid", "alternating-rows", "bento"}, Purpose: "Product capabilities and benefits"},
		{Name: models.ArchetypeHowItWorks, Variants: []string{"numbered-steps", "timeline"}, Purpose: "Sequential explanation of a process"},
		{Name: models.ArchetypeComparison, Variants: []string{"table", "side-by-side"}, Purpose: "Feature or competitor comparison"},
		{Name: models.ArchetypePricing, Variants: []string{"three-tier", "toggle-billing", "single-plan"}, Purpose: "Plans, prices and purchase options"},
		{Name: models.ArchetypeCTA, Variants: []string{"banner", "split"}, Purpose: "Secondary conversion prompt"},
		{Name: models.ArchetypeNewsletter, Variants: []string{"inline-form", "card"}, Purpose: "Email capture"},
		{Name: models.ArchetypeAbout, Variants: []string{"story", "mission-split"}, Purpose: "Company background and mission"},
		{Name: models.ArchetypeTeam, Variants: []string{"portrait-grid", "carousel"}, Purpose: "People behind the product"},
		{Name: models.ArchetypeFAQ, Variants: []string{"accordion", "two-column"}, Purpose: "Frequently asked questions"},
		{Name: models.ArchetypeProductShowcase, Variants: []string{"screenshot-tabs", "product-grid"}, Purpose: "Product imagery or catalog highlights"},
		{Name: models.ArchetypePortfolio, Variants: []string{"masonry", "case-study-list"}, Purpose: "Past work and case studies"},
		{Name: models.ArchetypeBlogPreview, Variants: []string{"card-grid", "list"}, Purpose: "Recent articles or news"},
		{Name: models.ArchetypeVideo, Variants: []string{"embedded-player", "background-video"}, Purpose: "Featured video content"},
		{Name: models.ArchetypeGallery, Variants: []string{"grid", "lightbox-carousel"}, Purpose: "Image collection"},
		{Name: models.ArchetypeContact, Variants: []string{"form", "details-map"}, Purpose: "Contact form and location details"},
		{Name: models.ArchetypeAppDownload, Variants: []string{"store-badges", "phone-mockup"}, Purpose: "Mobile app promotion"},
		{Name: models.ArchetypeIntegrations, Variants: []string{"logo-grid", "category-tabs"}, Purpose: "Third-party integrations and connectors"},
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(DefaultEntries())
	if err != nil {
		// The built-in entries are covered by tests.
		panic(err)
	}
	return c
}

// DefaultKeywords returns the built-in keyword table. The first rule with a
// matching keyword wins, so broad words such as "why" or "free" resolve to
// the rule declared first. NAV, HERO and ANNOUNCEMENT-BAR have no keyword
// rule; tags, roles and position identify them.
func DefaultKeywords() KeywordTable {
	return KeywordTable{
		{Archetype: models.ArchetypeAbout, Keywords: []string{"about", "our story", "who we are", "our mission", "our history", "meet us"}},
		{Archetype: models.ArchetypeFeatures, Keywords: []string{
			"features", "what we offer", "capabilities", "solutions", "services", "what you get", "why choose",
			"why", "benefits", "advantages", "animate", "build",
		}},
		{Archetype: models.ArchetypeHowItWorks, Keywords: []string{
			"how it works", "how-it-works", "how we work", "our process", "steps", "getting started", "simple steps",
			"get started", "quick start", "installation", "setup", "minutes",
		}},
		{Archetype: models.ArchetypePricing, Keywords: []string{"pricing", "plans", "packages", "subscription", "choose your plan", "per month"}},
		{Archetype: models.ArchetypeTestimonials, Keywords: []string{"testimonials", "what people say", "reviews", "customer stories", "what our", "hear from"}},
		{Archetype: models.ArchetypeFAQ, Keywords: []string{"faq", "frequently asked", "questions", "common questions", "have questions"}},
		{Archetype: models.ArchetypeTeam, Keywords: []string{"team", "our people", "leadership", "founders"}},
		{Archetype: models.ArchetypeContact, Keywords: []string{"contact", "get in touch", "reach us", "talk to us", "lets talk", "let's talk", "let's connect"}},
		{Archetype: models.ArchetypeProductShowcase, Keywords: []string{
			"products", "shop", "collection", "our range", "menu", "catalog", "browse",
			"tools", "platform", "explore", "discover", "our stack",
		}},
		{Archetype: models.ArchetypePortfolio, Keywords: []string{"portfolio", "our work", "case studies", "projects"}},
		{Archetype: models.ArchetypeBlogPreview, Keywords: []string{"blog", "articles", "news", "latest", "insights", "resources"}},
		{Archetype: models.ArchetypeCTA, Keywords: []string{
			"try it", "sign up", "join", "start your", "ready to",
			"free", "create account", "begin", "launch",
		}},
		{Archetype: models.ArchetypeNewsletter, Keywords: []string{"newsletter", "subscribe", "stay updated", "join our list", "stay in the loop"}},
		{Archetype: models.ArchetypeStats, Keywords: []string{
			"numbers", "impact", "results", "by the numbers", "achievements",
			"metrics", "performance", "speed", "data",
		}},
		{Archetype: models.ArchetypeLogoBar, Keywords: []string{
			"trusted by", "partners", "as seen in", "our clients", "featured in",
			"brands", "trusted", "companies", "used by", "powered by", "built with",
		}},
		{Archetype: models.ArchetypeGallery, Keywords: []string{
			"gallery", "photos", "images", "moments",
			"showcase", "examples", "community", "inspiration", "showreel",
		}},
		{Archetype: models.ArchetypeComparison, Keywords: []string{"compare", "comparison", "vs", "versus", "difference", "before and after"}},
		{Archetype: models.ArchetypeVideo, Keywords: []string{"watch", "video", "see it in action", "demo"}},
		{Archetype: models.ArchetypeTrustBadges, Keywords: []string{"certified", "guarantee", "secure", "award"}},
		{Archetype: models.ArchetypeAppDownload, Keywords: []string{"download", "get the app", "available on", "app store", "google play"}},
		{Archetype: models.ArchetypeIntegrations, Keywords: []string{"integrations", "works with", "connect with", "compatible", "integrates with"}},
	}
}
