package snapshot

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/section-mapper/models"
	"github.com/dtnitsch/section-mapper/pkg/segmenter"
)

// contentSelector matches the elements the content scoper reads.
const contentSelector = "h1,h2,h3,h4,h5,h6,p,li,blockquote,figcaption,a,button"

// Geometry attributes a renderer writes onto each element when it serializes
// the DOM after layout.
const (
	attrX          = "data-x"
	attrY          = "data-y"
	attrWidth      = "data-width"
	attrHeight     = "data-height"
	attrBackground = "data-bg"
	attrPageHeight = "data-page-height"
)

// FromHTML builds a snapshot from HTML whose elements carry data-x, data-y,
// data-width and data-height attributes in page coordinates. When pageHeight
// is zero it is read from data-page-height on <body>, falling back to the
// lowest annotated edge.
func FromHTML(r io.Reader, pageHeight float64) (*Snapshot, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read html snapshot: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html snapshot: %w", err)
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return nil, fmt.Errorf("no body element: %w", ErrInvalidSnapshot)
	}

	if pageHeight <= 0 {
		pageHeight = attrFloat(body, attrPageHeight)
	}
	if pageHeight <= 0 {
		pageHeight = lowestEdge(body)
	}

	s := &Snapshot{
		URL:        canonicalURL(doc),
		Title:      normalizeText(doc.Find("title").First().Text()),
		PageHeight: pageHeight,
		HTML:       string(raw),
		container:  &htmlNode{sel: body},
		Styles:     styleSamples(body),
		Texts:      textEntities(body),
		Images:     imageEntities(body),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// htmlNode adapts a goquery selection of exactly one element.
type htmlNode struct {
	sel *goquery.Selection
}

var _ segmenter.Container = (*htmlNode)(nil)

func (n *htmlNode) Tag() string          { return goquery.NodeName(n.sel) }
func (n *htmlNode) ID() string           { return n.sel.AttrOr("id", "") }
func (n *htmlNode) ClassNames() []string { return strings.Fields(n.sel.AttrOr("class", "")) }
func (n *htmlNode) Role() string         { return n.sel.AttrOr("role", "") }
func (n *htmlNode) Rect() models.Rect    { return rectOf(n.sel) }

func (n *htmlNode) Visible() bool {
	if _, hidden := n.sel.Attr("hidden"); hidden {
		return false
	}
	style := inlineStyle(n.sel.AttrOr("style", ""))
	if strings.EqualFold(style["display"], "none") {
		return false
	}
	switch strings.ToLower(style["visibility"]) {
	case "hidden", "collapse":
		return false
	}
	return true
}

func (n *htmlNode) Children() []segmenter.Container {
	kids := n.sel.Children()
	out := make([]segmenter.Container, 0, kids.Length())
	kids.Each(func(_ int, s *goquery.Selection) {
		out = append(out, &htmlNode{sel: s})
	})
	return out
}

func (n *htmlNode) TextElements() []segmenter.TextElement {
	var out []segmenter.TextElement
	n.sel.Find(contentSelector).Each(func(_ int, s *goquery.Selection) {
		text := normalizeText(s.Text())
		if text == "" {
			return
		}
		tag := goquery.NodeName(s)
		el := segmenter.TextElement{Tag: tag, Text: text}
		if href, ok := s.Attr("href"); ok && tag == "a" {
			el.Href = &href
		}
		out = append(out, el)
	})
	return out
}

func (n *htmlNode) Images() []models.Image {
	var out []models.Image
	n.sel.Find("img").Each(func(_ int, s *goquery.Selection) {
		r := rectOf(s)
		w, h := r.Width, r.Height
		if w == 0 {
			w = attrFloat(s, "width")
		}
		if h == 0 {
			h = attrFloat(s, "height")
		}
		out = append(out, models.Image{
			Src:    s.AttrOr("src", ""),
			Alt:    s.AttrOr("alt", ""),
			Width:  w,
			Height: h,
		})
	})
	return out
}

func (n *htmlNode) BackgroundImages() []string {
	var out []string
	if u := backgroundOf(n.sel); u != "" {
		out = append(out, u)
	}
	n.sel.Find("[data-bg],[style]").Each(func(_ int, s *goquery.Selection) {
		if u := backgroundOf(s); u != "" {
			out = append(out, u)
		}
	})
	return out
}

func backgroundOf(s *goquery.Selection) string {
	if bg, ok := s.Attr(attrBackground); ok {
		return cssURL(bg)
	}
	style := inlineStyle(s.AttrOr("style", ""))
	if v := style["background-image"]; v != "" {
		return cssURL(v)
	}
	return cssURL(style["background"])
}

func rectOf(s *goquery.Selection) models.Rect {
	return models.Rect{
		X:      attrFloat(s, attrX),
		Y:      attrFloat(s, attrY),
		Width:  attrFloat(s, attrWidth),
		Height: attrFloat(s, attrHeight),
	}
}

// attrFloat parses a numeric attribute, tolerating a trailing "px".
// Missing or malformed values read as zero.
func attrFloat(s *goquery.Selection, name string) float64 {
	v, ok := s.Attr(name)
	if !ok {
		return 0
	}
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

func lowestEdge(body *goquery.Selection) float64 {
	low := rectOf(body).Bottom()
	body.Find("[" + attrHeight + "]").Each(func(_ int, s *goquery.Selection) {
		if b := rectOf(s).Bottom(); b > low {
			low = b
		}
	})
	return low
}

func canonicalURL(doc *goquery.Document) string {
	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok {
		return strings.TrimSpace(href)
	}
	if content, ok := doc.Find(`meta[property="og:url"]`).First().Attr("content"); ok {
		return strings.TrimSpace(content)
	}
	return ""
}

// selectorFor builds a short CSS selector: #id, or tag plus up to two classes.
func selectorFor(s *goquery.Selection) string {
	if id := s.AttrOr("id", ""); id != "" {
		return "#" + id
	}
	tag := goquery.NodeName(s)
	var cls []string
	for _, c := range strings.Fields(s.AttrOr("class", "")) {
		if len(c) < 30 {
			cls = append(cls, c)
		}
		if len(cls) == 2 {
			break
		}
	}
	if len(cls) > 0 {
		return tag + "." + strings.Join(cls, ".")
	}
	return tag
}

func textEntities(body *goquery.Selection) []models.TextEntity {
	var out []models.TextEntity
	body.Find(contentSelector).Each(func(_ int, s *goquery.Selection) {
		if _, ok := s.Attr(attrY); !ok {
			return
		}
		text := normalizeText(s.Text())
		if text == "" {
			return
		}
		r := rectOf(s)
		out = append(out, models.TextEntity{Tag: goquery.NodeName(s), Text: text, Y: r.Y, Height: r.Height})
	})
	return out
}

func imageEntities(body *goquery.Selection) []models.ImageEntity {
	var out []models.ImageEntity
	body.Find("img").Each(func(_ int, s *goquery.Selection) {
		if _, ok := s.Attr(attrY); !ok {
			return
		}
		r := rectOf(s)
		out = append(out, models.ImageEntity{
			Src:    s.AttrOr("src", ""),
			Alt:    s.AttrOr("alt", ""),
			Y:      r.Y,
			Width:  r.Width,
			Height: r.Height,
		})
	})
	return out
}

func styleSamples(body *goquery.Selection) []models.StyleSample {
	var out []models.StyleSample
	body.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		if _, ok := s.Attr(attrY); !ok {
			return
		}
		style := inlineStyle(s.AttrOr("style", ""))
		sample := models.StyleSample{
			Selector:        selectorFor(s),
			Color:           style["color"],
			BackgroundColor: style["background-color"],
			FontFamily:      style["font-family"],
			FontSize:        style["font-size"],
		}
		if sample.Color == "" && sample.BackgroundColor == "" && sample.FontFamily == "" && sample.FontSize == "" {
			return
		}
		r := rectOf(s)
		sample.Y, sample.Height = r.Y, r.Height
		out = append(out, sample)
	})
	return out
}
