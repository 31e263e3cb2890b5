package catalog

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Query is a parsed search. Free words must appear in the title or the
// author; 'a and 't prefixes restrict words to the author or the title and
// 'y restricts the year.
type Query struct {
	Free   []string
	Author []string
	Title  []string
	Year   int
	text   string
}

// String returns the text the query was parsed from.
func (q Query) String() string { return q.text }

// ParseQuery parses text. Blank text, or a prefix with nothing after it,
// is not a query.
func ParseQuery(text string) (Query, bool) {
	q := Query{text: strings.TrimSpace(text)}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Query{}, false
	}
	target := &q.Free
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		switch f {
		case "'a":
			target = &q.Author
			continue
		case "'t":
			target = &q.Title
			continue
		case "'y":
			if i+1 >= len(fields) {
				return Query{}, false
			}
			y, err := strconv.Atoi(fields[i+1])
			if err != nil {
				return Query{}, false
			}
			q.Year = y
			i++
			continue
		}
		*target = append(*target, fold(f))
	}
	if len(q.Free) == 0 && len(q.Author) == 0 && len(q.Title) == 0 && q.Year == 0 {
		return Query{}, false
	}
	return q, true
}

// Match reports whether e satisfies every part of q.
func (q Query) Match(e Entry) bool {
	title, author := fold(e.Title), fold(e.Author)
	for _, w := range q.Title {
		if !strings.Contains(title, w) {
			return false
		}
	}
	for _, w := range q.Author {
		if !strings.Contains(author, w) {
			return false
		}
	}
	for _, w := range q.Free {
		if !strings.Contains(title, w) && !strings.Contains(author, w) {
			return false
		}
	}
	return q.Year == 0 || q.Year == e.Year
}

// Filter returns the entries of es matching q, keeping their order.
func (q Query) Filter(es []Entry) []Entry {
	var out []Entry
	for _, e := range es {
		if q.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// fold lower-cases s and strips diacritics so that "Brontë" matches
// "bronte".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
