package segmenter

import (
	"strings"

	"github.com/dtnitsch/section-mapper/models"
)

// contentTags are the descendant tags the content scoper looks at.
var contentTags = map[string]struct{}{
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"p": {}, "li": {}, "blockquote": {}, "figcaption": {},
	"a": {}, "button": {},
}

// IsContentTag reports whether tag is one the content scoper collects.
func IsContentTag(tag string) bool {
	_, ok := contentTags[strings.ToLower(tag)]
	return ok
}

// scopeContent routes a section's own text elements into headings, CTAs and
// body text. Deduplication is by exact trimmed text across all tags, so a
// string seen first as a heading will not reappear as a CTA.
func scopeContent(elems []TextElement) models.SectionContent {
	content := models.SectionContent{
		Headings: []string{},
		BodyText: []string{},
		CTAs:     []models.CTA{},
	}
	seen := make(map[string]struct{}, len(elems))

	for _, el := range elems {
		tag := strings.ToLower(el.Tag)
		if !IsContentTag(tag) {
			continue
		}
		text := strings.TrimSpace(el.Text)
		if text == "" {
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}

		switch {
		case models.IsHeadingTag(tag):
			content.Headings = append(content.Headings, text)
		case tag == "a" || tag == "button":
			cta := models.CTA{Text: text}
			if tag == "a" && el.Href != nil {
				href := *el.Href
				cta.Href = &href
			}
			content.CTAs = append(content.CTAs, cta)
		default:
			content.BodyText = append(content.BodyText, text)
		}
	}
	return content
}

func scopeImages(imgs []models.Image) []models.Image {
	out := make([]models.Image, 0, len(imgs))
	for _, img := range imgs {
		if strings.TrimSpace(img.Src) == "" {
			continue
		}
		out = append(out, img)
	}
	return out
}

func dedupStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
