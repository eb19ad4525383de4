package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/section-mapper/models"
	"github.com/dtnitsch/section-mapper/pkg/segmenter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonSnapshot = `{
  "url": "https://example.com",
  "title": "Example",
  "page_height": 1000,
  "root": {
    "tag": "BODY",
    "rect": {"x": 0, "y": 0, "width": 1280, "height": 1000},
    "children": [
      {"tag": "nav", "rect": {"y": 0, "width": 1280, "height": 80},
       "children": [{"tag": "a", "text": "Home", "href": "/"}, {"tag": "button", "text": "Menu"}]},
      {"tag": "section", "id": "hero", "classes": ["hero", "dark"], "role": "region",
       "rect": {"y": 80, "width": 1280, "height": 600},
       "background_image": "url(\"/bg.jpg\")",
       "children": [
         {"tag": "h1", "text": "  Great\n  Coffee  "},
         {"tag": "img", "src": "/cup.png", "alt": "cup", "rect": {"y": 200, "width": 300, "height": 200}},
         {"tag": "div", "background_image": "linear-gradient(red, blue)"}
       ]},
      {"tag": "div", "display": "none", "rect": {"y": 680, "height": 200}},
      {"tag": "footer", "visibility": "hidden", "rect": {"y": 900, "height": 100}}
    ]
  },
  "texts": [{"tag": "h1", "text": "Great Coffee", "y": 100, "height": 40}],
  "images": [{"src": "/cup.png", "y": 200, "width": 300, "height": 200}],
  "styles": [{"selector": "h1", "y": 100, "height": 40, "color": "#111"}]
}`

func TestLoadJSON(t *testing.T) {
	s, err := Load(strings.NewReader(jsonSnapshot))
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", s.URL)
	assert.Equal(t, 1000.0, s.PageHeight)
	require.Len(t, s.Texts, 1)
	require.Len(t, s.Images, 1)
	require.Len(t, s.Styles, 1)

	root := s.Container()
	require.NotNil(t, root)
	assert.Equal(t, "body", root.Tag())

	kids := root.Children()
	require.Len(t, kids, 4)

	nav := kids[0]
	texts := nav.TextElements()
	require.Len(t, texts, 2)
	require.NotNil(t, texts[0].Href)
	assert.Equal(t, "/", *texts[0].Href)
	assert.Nil(t, texts[1].Href)

	hero := kids[1]
	assert.Equal(t, "hero", hero.ID())
	assert.Equal(t, []string{"hero", "dark"}, hero.ClassNames())
	assert.Equal(t, "region", hero.Role())
	assert.Equal(t, []segmenter.TextElement{{Tag: "h1", Text: "Great Coffee"}}, hero.TextElements())
	assert.Equal(t, []models.Image{{Src: "/cup.png", Alt: "cup", Width: 300, Height: 200}}, hero.Images())
	assert.Equal(t, []string{"/bg.jpg"}, hero.BackgroundImages())

	assert.False(t, kids[2].Visible())
	assert.False(t, kids[3].Visible())
	assert.True(t, hero.Visible())
}

func TestLoadJSONSegments(t *testing.T) {
	s, err := Load(strings.NewReader(jsonSnapshot))
	require.NoError(t, err)

	sections := segmenter.Segment(s.Container(), s.PageHeight)
	require.Len(t, sections, 2)
	assert.Equal(t, "navigation", sections[0].Label)
	assert.Equal(t, "Great Coffee", sections[1].Label)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "missing root", data: `{"page_height": 100}`},
		{name: "negative height", data: `{"page_height": -1, "root": {"tag": "body"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.data))
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}

	_, err := Load(strings.NewReader(`{not json`))
	assert.Error(t, err)
}

func TestLoadDerivesPageHeight(t *testing.T) {
	s, err := Load(strings.NewReader(`{"root": {"tag": "body", "children": [
		{"tag": "div", "rect": {"y": 0, "height": 400}},
		{"tag": "div", "rect": {"y": 400, "height": 900}}
	]}}`))
	require.NoError(t, err)
	assert.Equal(t, 1300.0, s.PageHeight)
}

func TestMissingRectIsZero(t *testing.T) {
	n := &Node{TagName: "div"}
	assert.Equal(t, models.Rect{}, n.Rect())
	assert.True(t, n.Visible())
	assert.Empty(t, n.Children())
}

const htmlSnapshot = `<!doctype html>
<html>
<head>
  <title> Great Coffee Co </title>
  <link rel="canonical" href="https://coffee.example/">
</head>
<body data-page-height="1830" data-height="1830" data-width="1280">
  <nav data-y="0" data-height="80" data-width="1280">
    <a href="/" data-y="20" data-height="20">Home</a>
    <a href="/shop" data-y="20" data-height="20">Shop</a>
  </nav>
  <header data-y="80" data-height="600" data-width="1280" style="background-image: url('/beans.jpg')">
    <h1 data-y="200" data-height="60" style="color: #222; font-size: 48px">Great Coffee</h1>
    <p data-y="280" data-height="40">Roasted daily.</p>
    <img src="/cup.png" alt="cup" data-y="340" data-height="300" data-width="400">
    <button>Order now</button>
  </header>
  <div class="pricing-plans" data-y="680" data-height="900" data-width="1280">
    <div data-bg="/texture.png">
      <p data-y="700" data-height="20">Basic $9</p>
      <p data-y="740" data-height="20">Pro $19</p>
    </div>
  </div>
  <div hidden data-y="1580" data-height="200"><p>gone</p></div>
  <aside style="display: none" data-y="1580" data-height="200"></aside>
  <footer data-y="1580" data-height="250" data-width="1280">
    <p data-y="1600" data-height="20">© Coffee</p>
  </footer>
</body>
</html>`

func TestFromHTML(t *testing.T) {
	s, err := FromHTML(strings.NewReader(htmlSnapshot), 0)
	require.NoError(t, err)

	assert.Equal(t, 1830.0, s.PageHeight)
	assert.Equal(t, "Great Coffee Co", s.Title)
	assert.Equal(t, "https://coffee.example/", s.URL)
	assert.Contains(t, s.HTML, "pricing-plans")

	sections := segmenter.Segment(s.Container(), s.PageHeight)
	require.Len(t, sections, 4)

	tags := []string{sections[0].Tag, sections[1].Tag, sections[2].Tag, sections[3].Tag}
	assert.Equal(t, []string{"nav", "header", "div", "footer"}, tags)

	nav := sections[0]
	require.Len(t, nav.Content.CTAs, 2)
	assert.Equal(t, "/shop", *nav.Content.CTAs[1].Href)

	header := sections[1]
	assert.Equal(t, "header", header.Label)
	assert.Equal(t, []string{"Great Coffee"}, header.Content.Headings)
	assert.Equal(t, []string{"Roasted daily."}, header.Content.BodyText)
	require.Len(t, header.Content.CTAs, 1)
	assert.Nil(t, header.Content.CTAs[0].Href)
	assert.Equal(t, []models.Image{{Src: "/cup.png", Alt: "cup", Width: 400, Height: 300}}, header.Images)
	assert.Equal(t, []string{"/beans.jpg"}, header.BackgroundImages)

	pricing := sections[2]
	assert.Equal(t, []string{"pricing-plans"}, pricing.ClassNames)
	assert.Equal(t, []string{"/texture.png"}, pricing.BackgroundImages)
	assert.Equal(t, models.Rect{Y: 680, Width: 1280, Height: 900}, pricing.Rect)
}

func TestFromHTMLEntities(t *testing.T) {
	s, err := FromHTML(strings.NewReader(htmlSnapshot), 0)
	require.NoError(t, err)

	// The <button> and hidden <p> carry no data-y and are not page entities.
	var texts []string
	for _, e := range s.Texts {
		texts = append(texts, e.Text)
	}
	assert.Equal(t, []string{"Home", "Shop", "Great Coffee", "Roasted daily.", "Basic $9", "Pro $19", "© Coffee"}, texts)

	require.Len(t, s.Images, 1)
	assert.Equal(t, models.ImageEntity{Src: "/cup.png", Alt: "cup", Y: 340, Width: 400, Height: 300}, s.Images[0])

	require.Len(t, s.Styles, 1)
	assert.Equal(t, "h1", s.Styles[0].Selector)
	assert.Equal(t, "#222", s.Styles[0].Color)
	assert.Equal(t, "48px", s.Styles[0].FontSize)
	assert.Equal(t, 200.0, s.Styles[0].Y)
}

func TestFromHTMLExplicitPageHeight(t *testing.T) {
	s, err := FromHTML(strings.NewReader(`<body><div data-y="0" data-height="500"></div></body>`), 2400)
	require.NoError(t, err)
	assert.Equal(t, 2400.0, s.PageHeight)

	s, err = FromHTML(strings.NewReader(`<body><div data-y="100" data-height="500px"></div></body>`), 0)
	require.NoError(t, err)
	assert.Equal(t, 600.0, s.PageHeight)
}

func TestLoadFileByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "page.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonSnapshot), 0o644))
	s, err := LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "Example", s.Title)

	htmlPath := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(htmlPath, []byte(htmlSnapshot), 0o644))
	s, err = LoadFile(htmlPath)
	require.NoError(t, err)
	assert.Equal(t, 1830.0, s.PageHeight)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestCSSURL(t *testing.T) {
	tests := map[string]string{
		`url("/a.png")`:            "/a.png",
		`url('/b.png')`:            "/b.png",
		`url( /c.png )`:            "/c.png",
		`none`:                     "",
		``:                         "",
		`linear-gradient(red,red)`: "",
		`/plain.png`:               "/plain.png",
	}
	for in, want := range tests {
		assert.Equal(t, want, cssURL(in), in)
	}
}
