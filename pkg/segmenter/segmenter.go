// Package segmenter partitions a rendered page into ordered visual sections.
// It descends through structural wrappers instead of emitting them and scopes
// every section's content to its own subtree.
package segmenter

import (
	"strings"
	"unicode/utf8"

	"github.com/dtnitsch/section-mapper/models"
)

const (
	// DefaultMinHeight is the shortest node that can become a section.
	DefaultMinHeight = 50.0
	// DefaultWrapperCoverage is the page-height ratio above which a node with
	// several tall children is treated as a wrapper.
	DefaultWrapperCoverage = 0.8
	// maxLabelLen caps heading-derived labels, counted in runes.
	maxLabelLen = 60
)

// Options tunes segmentation. Zero fields take the defaults.
type Options struct {
	MinHeight       float64
	WrapperCoverage float64
}

func (o *Options) defaults() {
	if o.MinHeight <= 0 {
		o.MinHeight = DefaultMinHeight
	}
	if o.WrapperCoverage <= 0 {
		o.WrapperCoverage = DefaultWrapperCoverage
	}
}

// Segment walks root's children and returns the page sections in document
// order with contiguous indices.
func Segment(root Container, pageHeight float64) []models.Section {
	return SegmentWithOptions(root, pageHeight, Options{})
}

// SegmentWithOptions is Segment with explicit thresholds.
func SegmentWithOptions(root Container, pageHeight float64, opts Options) []models.Section {
	opts.defaults()
	if root == nil {
		return []models.Section{}
	}

	s := &walker{pageHeight: pageHeight, opts: opts, sections: []models.Section{}}
	s.walk(root)
	return s.sections
}

type walker struct {
	pageHeight float64
	opts       Options
	sections   []models.Section
}

func (w *walker) walk(parent Container) {
	for _, child := range parent.Children() {
		if child == nil || !w.qualifies(child) {
			continue
		}
		if w.isWrapper(child) {
			w.walk(child)
			continue
		}
		w.emit(child)
	}
}

// qualifies reports whether a node is visible and tall enough to matter.
func (w *walker) qualifies(n Container) bool {
	return n.Visible() && n.Rect().Height >= w.opts.MinHeight
}

// isWrapper reports whether n covers most of the page and groups more than
// one tall child.
func (w *walker) isWrapper(n Container) bool {
	if n.Rect().Height <= w.pageHeight*w.opts.WrapperCoverage {
		return false
	}
	tall := 0
	for _, c := range n.Children() {
		if c != nil && c.Rect().Height > w.opts.MinHeight {
			tall++
		}
	}
	return tall > 1
}

func (w *walker) emit(n Container) {
	elems := n.TextElements()
	content := scopeContent(elems)
	sec := models.Section{
		Index:            len(w.sections),
		Tag:              strings.ToLower(n.Tag()),
		ID:               n.ID(),
		ClassNames:       append([]string(nil), n.ClassNames()...),
		Role:             strings.ToLower(n.Role()),
		Rect:             clampRect(n.Rect(), w.pageHeight),
		Content:          content,
		Images:           scopeImages(n.Images()),
		BackgroundImages: dedupStrings(n.BackgroundImages()),
	}
	sec.Label = label(sec.Tag, sec.Role, elems)
	w.sections = append(w.sections, sec)
}

// label names landmark sections by their role and everything else by its
// first descendant heading. Content dedup does not apply here: a heading
// repeating earlier body text still labels the section.
func label(tag, role string, elems []TextElement) string {
	switch {
	case tag == "nav" || role == "navigation":
		return "navigation"
	case tag == "header" || role == "banner":
		return "header"
	case tag == "footer" || role == "contentinfo":
		return "footer"
	}
	for _, el := range elems {
		if !models.IsHeadingTag(strings.ToLower(el.Tag)) {
			continue
		}
		if text := strings.TrimSpace(el.Text); text != "" {
			return truncate(text, maxLabelLen)
		}
	}
	return ""
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// clampRect keeps the vertical extent inside [0, pageHeight].
func clampRect(r models.Rect, pageHeight float64) models.Rect {
	if pageHeight <= 0 {
		return r
	}
	top := r.Y
	bottom := r.Bottom()
	if top < 0 {
		top = 0
	}
	if bottom > pageHeight {
		bottom = pageHeight
	}
	if top > pageHeight {
		top = pageHeight
	}
	if bottom < top {
		bottom = top
	}
	r.Y = top
	r.Height = bottom - top
	return r
}
