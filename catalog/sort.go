package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMethod orders a listing.
type SortMethod int

const (
	SortAdded SortMethod = iota
	SortTitle
	SortAuthor
	SortYear
	SortWords
)

// SortMethods lists the methods in menu order.
var SortMethods = []SortMethod{SortAdded, SortTitle, SortAuthor, SortYear, SortWords}

// Title is the label shown in the sort menu and the top bar.
func (m SortMethod) Title() string {
	switch m {
	case SortTitle:
		return "Title"
	case SortAuthor:
		return "Author"
	case SortYear:
		return "Year"
	case SortWords:
		return "Word Count"
	}
	return "Date Added"
}

// ReverseOrder reports whether the method lists newest or largest first by
// default.
func (m SortMethod) ReverseOrder() bool {
	switch m {
	case SortAdded, SortYear, SortWords:
		return true
	}
	return false
}

// Sort orders es in place by m, reversed when reverse is set. Equal keys
// keep their relative order.
func Sort(es []Entry, m SortMethod, reverse bool) {
	c := collate.New(language.English, collate.Loose)
	less := func(a, b Entry) bool {
		switch m {
		case SortTitle:
			return c.CompareString(a.Title, b.Title) < 0
		case SortAuthor:
			return c.CompareString(a.Author, b.Author) < 0
		case SortYear:
			return a.Year < b.Year
		case SortWords:
			return a.Words < b.Words
		}
		return a.Added < b.Added
	}
	sort.SliceStable(es, func(i, j int) bool {
		if reverse {
			return less(es[j], es[i])
		}
		return less(es[i], es[j])
	})
}
