package segmenter

import "github.com/dtnitsch/section-mapper/models"

// TextElement is a descendant element that carries visible text.
type TextElement struct {
	Tag  string
	Text string
	Href *string // anchors only
}

// Container is the read-only view of a rendered node that the segmenter
// walks. Renderer adapters implement it over whatever DOM they have.
type Container interface {
	Tag() string
	ID() string
	ClassNames() []string
	Role() string
	Rect() models.Rect
	Visible() bool
	Children() []Container

	// TextElements returns descendant elements (not the container itself)
	// with text, in document order.
	TextElements() []TextElement
	// Images returns descendant <img> elements in document order.
	Images() []models.Image
	// BackgroundImages returns background-image URLs set on the container
	// or its descendants.
	BackgroundImages() []string
}
