// Package analytics computes term frequencies over section text: a map step
// per section and a reduce step across the page.
package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dtnitsch/section-mapper/models"
)

// stopwords are ignored in frequency analysis, along with common UI chrome.
var stopwords = func() map[string]struct{} {
	words := strings.Fields(`
		a about above after again against all also am an and any are as at
		be because been before being below between both but by
		can cannot could did do does doing down during each every few for from further
		had has have having he her here hers him his how i if in into is it its itself
		just me more most my no nor not now of off on once only or other our ours out over own
		per same she should so some such than that the their them then there these they this
		those through to too under until up us very was we were what when where which while
		who whom why will with would you your yours
		click button link menu page site website home homepage search learn read view
	`)
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()

// IsStopword checks if a word is ignored by the frequency analysis.
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}

// WordFrequency counts the words of text, lowercased and trimmed of
// punctuation. Stopwords and single characters are skipped.
func WordFrequency(text string) map[string]int {
	frequencies := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return ('a' > r || r > 'z') && ('0' > r || r > '9')
		})
		if len(word) < 2 || IsStopword(word) {
			continue
		}
		frequencies[word]++
	}
	return frequencies
}

// Map generates a word frequency map for one section's headings and body text.
func Map(s models.Section) map[string]int {
	parts := make([]string, 0, len(s.Content.Headings)+len(s.Content.BodyText))
	parts = append(parts, s.Content.Headings...)
	parts = append(parts, s.Content.BodyText...)
	return WordFrequency(strings.Join(parts, " "))
}

// Reduce aggregates word frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	final := make(map[string]int)
	for _, counts := range intermediate {
		for word, count := range counts {
			final[word] += count
		}
	}
	return final
}

// TopKeywords returns the n most frequent words formatted as "word:count".
// Ties are broken alphabetically.
func TopKeywords(counts map[string]int, n int) []string {
	type kv struct {
		word  string
		count int
	}
	ss := make([]kv, 0, len(counts))
	for w, c := range counts {
		ss = append(ss, kv{w, c})
	}
	sort.Slice(ss, func(i, j int) bool {
		if ss[i].count != ss[j].count {
			return ss[i].count > ss[j].count
		}
		return ss[i].word < ss[j].word
	})

	if n < 0 {
		n = 0
	}
	if len(ss) < n {
		n = len(ss)
	}
	keywords := make([]string, n)
	for i := 0; i < n; i++ {
		keywords[i] = fmt.Sprintf("%s:%d", ss[i].word, ss[i].count)
	}
	return keywords
}

// PageKeywords runs Map over every section and returns the top n terms of the page.
func PageKeywords(sections []models.Section, n int) []string {
	intermediate := make([]map[string]int, 0, len(sections))
	for _, s := range sections {
		intermediate = append(intermediate, Map(s))
	}
	return TopKeywords(Reduce(intermediate), n)
}
