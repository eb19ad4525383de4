package classifier

import "github.com/dtnitsch/section-mapper/models"

// Dedup collapses runs of adjacent sections that share a non-fallback
// archetype into the one with the highest confidence; on ties the earlier
// section is kept. Adjacent fallback sections are left alone. Survivors keep
// their original indices. A new slice is returned.
func Dedup(mapped []models.MappedSection, fallback models.Archetype) []models.MappedSection {
	out := make([]models.MappedSection, 0, len(mapped))
	for _, m := range mapped {
		n := len(out)
		if n == 0 || m.Archetype == fallback || out[n-1].Archetype != m.Archetype {
			out = append(out, m)
			continue
		}
		if m.Confidence > out[n-1].Confidence {
			out[n-1] = m
		}
	}
	return out
}
