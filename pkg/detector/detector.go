// Package detector enriches a classification run with page-level metadata:
// title, site name and excerpt from go-readability, and the dominant
// language of the section text from lingua.
package detector

import (
	"net/url"
	"strings"
	"sync"

	"github.com/dtnitsch/section-mapper/models"
	"github.com/dtnitsch/section-mapper/pkg/analytics"
	"github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"
)

const (
	// minLanguageChars is the least amount of text worth running detection on.
	minLanguageChars = 40
	topKeywordCount  = 10
)

// PageMetadata describes the captured page as a whole.
type PageMetadata struct {
	Title              string  `json:"title,omitempty" yaml:"title,omitempty"`
	SiteName           string  `json:"site_name,omitempty" yaml:"site_name,omitempty"`
	Byline             string  `json:"byline,omitempty" yaml:"byline,omitempty"`
	Excerpt            string  `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	Language           string  `json:"language,omitempty" yaml:"language,omitempty"` // ISO-639-1, lowercase
	LanguageConfidence float64 `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`

	// TopKeywords are the most frequent section terms as "word:count".
	TopKeywords []string `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
}

// Page is the subset of a snapshot the detector reads.
type Page struct {
	URL   string
	Title string
	HTML  string
}

var (
	languageDetector lingua.LanguageDetector
	languageOnce     sync.Once
)

// detectorLanguages are the languages the keyword tables are written for,
// plus the common neighbours that get mistaken for them.
var detectorLanguages = []lingua.Language{
	lingua.English, lingua.French, lingua.German, lingua.Spanish,
	lingua.Italian, lingua.Portuguese, lingua.Dutch,
}

func getLanguageDetector() lingua.LanguageDetector {
	languageOnce.Do(func() {
		languageDetector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(detectorLanguages...).
			Build()
	})
	return languageDetector
}

// Analyze derives page metadata from the snapshot and its segmented sections.
// Missing HTML only skips the readability step.
func Analyze(page Page, sections []models.Section) PageMetadata {
	meta := PageMetadata{Title: strings.TrimSpace(page.Title)}

	if page.HTML != "" {
		enrichFromReadability(&meta, page)
	}

	text := sectionText(sections)
	if len(text) >= minLanguageChars {
		d := getLanguageDetector()
		if lang, ok := d.DetectLanguageOf(text); ok {
			meta.Language = strings.ToLower(lang.IsoCode639_1().String())
			meta.LanguageConfidence = d.ComputeLanguageConfidence(text, lang)
		}
	}

	meta.TopKeywords = analytics.PageKeywords(sections, topKeywordCount)
	if len(meta.TopKeywords) == 0 {
		meta.TopKeywords = nil
	}
	return meta
}

func enrichFromReadability(meta *PageMetadata, page Page) {
	pageURL, err := url.Parse(page.URL)
	if err != nil {
		pageURL = &url.URL{}
	}
	article, err := readability.FromReader(strings.NewReader(page.HTML), pageURL)
	if err != nil {
		return
	}
	if meta.Title == "" {
		meta.Title = strings.TrimSpace(article.Title)
	}
	meta.SiteName = article.SiteName
	meta.Byline = article.Byline
	meta.Excerpt = article.Excerpt
}

// sectionText joins headings and body text in section order.
func sectionText(sections []models.Section) string {
	var sb strings.Builder
	for _, s := range sections {
		for _, h := range s.Content.Headings {
			sb.WriteString(h)
			sb.WriteString("\n")
		}
		for _, p := range s.Content.BodyText {
			sb.WriteString(p)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
