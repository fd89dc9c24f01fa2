// Package index groups written feeds alphabetically for the HTML overview.
// Titles are normalized with a Unicode compatibility decomposition before
// their first letter is taken, so "Ärger" files under "A".
package index

import (
	"sort"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Entry is one written feed on the overview page.
type Entry struct {
	Path  string // relative link from the HTML directory to the feed file
	Title string // normalized display title
}

// Group collects the entries filed under one letter.
type Group struct {
	Letter  string
	Entries []Entry
}

// Letter is one item of the navigation list.
type Letter struct {
	Anchor  string
	Display string
}

// Aggregator collects written feeds and hands them out grouped and sorted.
type Aggregator struct {
	entries []Entry
}

// Add records a written feed. The title is normalized here; callers pass
// the program title as-is.
func (a *Aggregator) Add(path, title string) {
	a.entries = append(a.entries, Entry{
		Path:  path,
		Title: norm.NFKD.String(title),
	})
}

// Len reports how many feeds have been recorded.
func (a *Aggregator) Len() int {
	return len(a.entries)
}

// Groups returns the letter groups sorted by letter, each group's entries
// sorted by normalized title.
func (a *Aggregator) Groups() []Group {
	byLetter := make(map[string][]Entry)
	for _, entry := range a.entries {
		letter := firstLetter(entry.Title)
		byLetter[letter] = append(byLetter[letter], entry)
	}

	groups := make([]Group, 0, len(byLetter))
	for letter, entries := range byLetter {
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Title < entries[j].Title
		})
		groups = append(groups, Group{Letter: letter, Entries: entries})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Letter < groups[j].Letter
	})
	return groups
}

// Letters returns the navigation list matching Groups.
func (a *Aggregator) Letters() []Letter {
	groups := a.Groups()
	letters := make([]Letter, 0, len(groups))
	for _, group := range groups {
		letters = append(letters, Letter{
			Anchor:  "#" + group.Letter,
			Display: group.Letter,
		})
	}
	return letters
}

// firstLetter returns the uppercased first rune of a normalized title.
func firstLetter(title string) string {
	for _, r := range title {
		return string(unicode.ToUpper(r))
	}
	return ""
}
