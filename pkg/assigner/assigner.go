// Package assigner maps page entities (style samples, text nodes, images) to
// the section that most specifically contains them.
//
// Sections are not modelled as a tree. A large section and a small section
// nested inside it can both contain the same point, so candidates are tried
// smallest-first and the first hit wins.
package assigner

import (
	"sort"

	"github.com/dtnitsch/section-mapper/models"
)

// Unassigned marks an entity that no section contains.
const Unassigned = -1

// Span is the vertical extent of an entity. A zero Height is a point at Y.
type Span struct {
	Y      float64
	Height float64
}

// Midpoint returns the vertical centre used for containment.
func (s Span) Midpoint() float64 {
	if s.Height <= 0 {
		return s.Y
	}
	return s.Y + s.Height/2
}

// Point builds a Span for an entity that only has a y coordinate.
func Point(y float64) Span {
	return Span{Y: y}
}

type candidate struct {
	index int
	rect  models.Rect
}

// Assigner resolves spans against a fixed section list. It is immutable and
// safe for concurrent use.
type Assigner struct {
	bySize []candidate
}

// New builds an Assigner over a copy of sections ordered by height, ties
// keeping document order.
func New(sections []models.Section) *Assigner {
	bySize := make([]candidate, len(sections))
	for i, s := range sections {
		bySize[i] = candidate{index: s.Index, rect: s.Rect}
	}
	sort.SliceStable(bySize, func(i, j int) bool {
		return bySize[i].rect.Height < bySize[j].rect.Height
	})
	return &Assigner{bySize: bySize}
}

// Assign returns the index of the smallest section whose vertical interval
// contains the span's midpoint.
func (a *Assigner) Assign(span Span) (int, bool) {
	mid := span.Midpoint()
	for _, c := range a.bySize {
		if c.rect.ContainsY(mid) {
			return c.index, true
		}
	}
	return Unassigned, false
}

// AssignAll resolves every span, using Unassigned for misses.
func (a *Assigner) AssignAll(spans []Span) []int {
	out := make([]int, len(spans))
	for i, s := range spans {
		out[i], _ = a.Assign(s)
	}
	return out
}
