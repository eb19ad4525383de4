package snapshot

import (
	"bufio"
	"regexp"
	"strings"
)

// normalizeText trims each line and joins the non-empty ones with a single space.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}

var cssURLPattern = regexp.MustCompile(`url\(\s*['"]?([^'")]+)['"]?\s*\)`)

// cssURL extracts the first url(...) from a background-image value. Plain
// URLs without url() are returned as-is; "none" yields "".
func cssURL(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "none") {
		return ""
	}
	if m := cssURLPattern.FindStringSubmatch(v); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	if strings.Contains(v, "(") {
		// gradients and other functions carry no image
		return ""
	}
	return v
}

// inlineStyle parses a style attribute into lowercase property names.
func inlineStyle(style string) map[string]string {
	props := make(map[string]string)
	for _, decl := range strings.Split(style, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		props[k] = strings.TrimSpace(v)
	}
	return props
}
