package models

// StyleSample is a computed-style probe taken by the renderer at some element.
type StyleSample struct {
	Selector        string  `json:"selector" yaml:"selector"`
	Y               float64 `json:"y" yaml:"y"`
	Height          float64 `json:"height" yaml:"height"`
	Color           string  `json:"color,omitempty" yaml:"color,omitempty"`
	BackgroundColor string  `json:"background_color,omitempty" yaml:"background_color,omitempty"`
	FontFamily      string  `json:"font_family,omitempty" yaml:"font_family,omitempty"`
	FontSize        string  `json:"font_size,omitempty" yaml:"font_size,omitempty"`
}

// TextEntity is a text-bearing element gathered from the whole page.
type TextEntity struct {
	Tag    string  `json:"tag" yaml:"tag"`
	Text   string  `json:"text" yaml:"text"`
	Y      float64 `json:"y" yaml:"y"`
	Height float64 `json:"height" yaml:"height"`
}

// IsHeading reports whether the entity came from an h1-h6 element.
func (t TextEntity) IsHeading() bool {
	return IsHeadingTag(t.Tag)
}

// ImageEntity is an image gathered from the whole page.
type ImageEntity struct {
	Src    string  `json:"src" yaml:"src"`
	Alt    string  `json:"alt,omitempty" yaml:"alt,omitempty"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// IsHeadingTag reports whether tag is h1 through h6.
func IsHeadingTag(tag string) bool {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}
