package assigner

import "github.com/dtnitsch/section-mapper/models"

// Groups buckets items by section index. Items that no section contains are
// kept in Unassigned, in input order.
type Groups[T any] struct {
	BySection  map[int][]T `json:"by_section" yaml:"by_section"`
	Unassigned []T         `json:"unassigned" yaml:"unassigned"`
}

// Group assigns each item via spanOf and buckets it.
func Group[T any](a *Assigner, items []T, spanOf func(T) Span) Groups[T] {
	g := Groups[T]{BySection: make(map[int][]T)}
	for _, item := range items {
		idx, ok := a.Assign(spanOf(item))
		if !ok {
			g.Unassigned = append(g.Unassigned, item)
			continue
		}
		g.BySection[idx] = append(g.BySection[idx], item)
	}
	return g
}

// Count returns the number of items attributed to a section.
func (g Groups[T]) Count(index int) int {
	return len(g.BySection[index])
}

// AssignStyles groups style samples by section.
func AssignStyles(a *Assigner, styles []models.StyleSample) Groups[models.StyleSample] {
	return Group(a, styles, func(s models.StyleSample) Span {
		return Span{Y: s.Y, Height: s.Height}
	})
}

// AssignTexts groups text entities by section.
func AssignTexts(a *Assigner, texts []models.TextEntity) Groups[models.TextEntity] {
	return Group(a, texts, func(t models.TextEntity) Span {
		return Span{Y: t.Y, Height: t.Height}
	})
}

// AssignImages groups image entities by section.
func AssignImages(a *Assigner, images []models.ImageEntity) Groups[models.ImageEntity] {
	return Group(a, images, func(img models.ImageEntity) Span {
		return Span{Y: img.Y, Height: img.Height}
	})
}
