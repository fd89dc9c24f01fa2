package models

import (
	"fmt"
	"strconv"
)

// ProgramSet represents one show/series in the Audiothek catalog.
// It is created from a program-set listing record and later enriched
// by the episode query, which fills Items, ImageURL and Path.
type ProgramSet struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	SharingURL  string  `json:"sharingUrl"`
	Description string  `json:"description"`
	Synopsis    string  `json:"synopsis"`
	ImageURL    *string `json:"imageUrl,omitempty"` // nil when the show has no artwork
	Path        string  `json:"path,omitempty"`     // site-relative path, known after the episode query
	Items       []*Item `json:"items,omitempty"`
}

// NumericID parses the catalog ID for use in output file names.
func (p *ProgramSet) NumericID() (int64, error) {
	id, err := strconv.ParseInt(p.ID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("program set %q has non-numeric ID: %w", p.Title, err)
	}
	return id, nil
}

// HasItems reports whether the episode query produced any episodes.
func (p *ProgramSet) HasItems() bool {
	return len(p.Items) > 0
}

// AddItems appends episodes in API order and sets their parent back-reference.
func (p *ProgramSet) AddItems(items []*Item) {
	for _, item := range items {
		item.parent = p
	}
	p.Items = append(p.Items, items...)
}

// ReleaseItems drops the episode list once the feed has been written.
// The items are not needed after serialization.
func (p *ProgramSet) ReleaseItems() {
	p.Items = nil
}
