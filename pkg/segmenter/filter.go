package segmenter

import "github.com/dtnitsch/section-mapper/models"

// DefaultResidualCoverage is the page-height ratio above which a section with
// no content of its own is considered a leftover wrapper.
const DefaultResidualCoverage = 0.7

// FilterWrappers drops full-page sections that carry no headings, body text
// or images, then re-indexes the survivors. It catches wrappers that did not
// meet the segmenter's multi-child rule. The input is not modified.
func FilterWrappers(sections []models.Section, pageHeight float64) []models.Section {
	out := make([]models.Section, 0, len(sections))
	for _, sec := range sections {
		if isResidualWrapper(sec, pageHeight) {
			continue
		}
		sec.Index = len(out)
		out = append(out, sec)
	}
	return out
}

func isResidualWrapper(sec models.Section, pageHeight float64) bool {
	if pageHeight <= 0 {
		return false
	}
	if sec.Rect.Height/pageHeight <= DefaultResidualCoverage {
		return false
	}
	return sec.Content.IsEmpty() && len(sec.Images) == 0
}
