package snapshot

import (
	"strings"

	"github.com/dtnitsch/section-mapper/models"
	"github.com/dtnitsch/section-mapper/pkg/segmenter"
)

// Node is one element of a captured render tree. Geometry and visibility are
// best-effort: a missing rect reads as zero-size and the segmenter skips it.
type Node struct {
	TagName    string       `json:"tag"`
	ElemID     string       `json:"id,omitempty"`
	ClassList  []string     `json:"classes,omitempty"`
	AriaRole   string       `json:"role,omitempty"`
	Box        *models.Rect `json:"rect,omitempty"`
	Display    string       `json:"display,omitempty"`
	Visibility string       `json:"visibility,omitempty"`
	// Text is the element's rendered text, including descendants.
	Text       string  `json:"text,omitempty"`
	Href       *string `json:"href,omitempty"`
	Src        string  `json:"src,omitempty"`
	Alt        string  `json:"alt,omitempty"`
	Background string  `json:"background_image,omitempty"`
	Kids       []*Node `json:"children,omitempty"`
}

var _ segmenter.Container = (*Node)(nil)

func (n *Node) Tag() string          { return strings.ToLower(n.TagName) }
func (n *Node) ID() string           { return n.ElemID }
func (n *Node) ClassNames() []string { return n.ClassList }
func (n *Node) Role() string         { return n.AriaRole }

func (n *Node) Rect() models.Rect {
	if n.Box == nil {
		return models.Rect{}
	}
	return *n.Box
}

// Visible is false for display:none and visibility:hidden or collapse.
func (n *Node) Visible() bool {
	if strings.EqualFold(strings.TrimSpace(n.Display), "none") {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(n.Visibility)) {
	case "hidden", "collapse":
		return false
	}
	return true
}

func (n *Node) Children() []segmenter.Container {
	out := make([]segmenter.Container, 0, len(n.Kids))
	for _, k := range n.Kids {
		if k != nil {
			out = append(out, k)
		}
	}
	return out
}

func (n *Node) TextElements() []segmenter.TextElement {
	var out []segmenter.TextElement
	n.eachDescendant(func(d *Node) {
		if d.Text == "" {
			return
		}
		el := segmenter.TextElement{Tag: d.Tag(), Text: normalizeText(d.Text)}
		if d.Tag() == "a" {
			el.Href = d.Href
		}
		out = append(out, el)
	})
	return out
}

func (n *Node) Images() []models.Image {
	var out []models.Image
	n.eachDescendant(func(d *Node) {
		if d.Tag() != "img" {
			return
		}
		r := d.Rect()
		out = append(out, models.Image{Src: d.Src, Alt: d.Alt, Width: r.Width, Height: r.Height})
	})
	return out
}

func (n *Node) BackgroundImages() []string {
	var out []string
	if u := cssURL(n.Background); u != "" {
		out = append(out, u)
	}
	n.eachDescendant(func(d *Node) {
		if u := cssURL(d.Background); u != "" {
			out = append(out, u)
		}
	})
	return out
}

// eachDescendant visits descendants depth-first in document order.
func (n *Node) eachDescendant(fn func(*Node)) {
	for _, k := range n.Kids {
		if k == nil {
			continue
		}
		fn(k)
		k.eachDescendant(fn)
	}
}

// bottom returns the lowest edge in the subtree.
func (n *Node) bottom() float64 {
	b := n.Rect().Bottom()
	n.eachDescendant(func(d *Node) {
		if v := d.Rect().Bottom(); v > b {
			b = v
		}
	})
	return b
}
