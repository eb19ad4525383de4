package models

// Rect is a bounding box in page coordinates.
type Rect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Bottom returns the lower vertical edge of the rect.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// ContainsY reports whether y lies within [Y, Y+Height].
func (r Rect) ContainsY(y float64) bool {
	return y >= r.Y && y <= r.Bottom()
}

// ContainsSpan reports whether the vertical span [y, y+h] lies fully inside the rect.
func (r Rect) ContainsSpan(y, h float64) bool {
	return y >= r.Y && y+h <= r.Bottom()
}

// CTA is a call-to-action link or button found inside a section.
type CTA struct {
	Text string  `json:"text" yaml:"text"`
	Href *string `json:"href" yaml:"href"` // nil for buttons and anchors without href
}

// Image is an <img> element scoped to a section.
type Image struct {
	Src    string  `json:"src" yaml:"src"`
	Alt    string  `json:"alt" yaml:"alt"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// SectionContent holds the text extracted from a single section's subtree.
type SectionContent struct {
	Headings []string `json:"headings" yaml:"headings"`
	BodyText []string `json:"body_text" yaml:"body_text"`
	CTAs     []CTA    `json:"ctas" yaml:"ctas"`
}

// IsEmpty reports whether the section carries no headings and no body text.
func (c SectionContent) IsEmpty() bool {
	return len(c.Headings) == 0 && len(c.BodyText) == 0
}

// Section is one visual region of the page, in document order.
type Section struct {
	Index            int            `json:"index" yaml:"index"`
	Tag              string         `json:"tag" yaml:"tag"`
	ID               string         `json:"id,omitempty" yaml:"id,omitempty"`
	ClassNames       []string       `json:"class_names,omitempty" yaml:"class_names,omitempty"`
	Role             string         `json:"role,omitempty" yaml:"role,omitempty"`
	Label            string         `json:"label" yaml:"label"`
	Rect             Rect           `json:"rect" yaml:"rect"`
	Content          SectionContent `json:"content" yaml:"content"`
	Images           []Image        `json:"images" yaml:"images"`
	BackgroundImages []string       `json:"background_images" yaml:"background_images"`
}
