package models

import "strings"

// imageWidth is substituted for the {width} placeholder in episode image URLs.
const imageWidth = "448"

// Item is one published episode of a ProgramSet.
type Item struct {
	ID          int64   `json:"id"` // the catalog supplies no stable episode ID here, always 0
	Title       string  `json:"title"`
	Duration    int     `json:"duration"` // seconds, 0 when the catalog omits it
	PubDate     string  `json:"pubDate"`  // publish timestamp as returned by the catalog, verbatim
	DownloadURL *string `json:"downloadUrl"`
	SharingURL  string  `json:"sharingUrl"`
	Description string  `json:"description"`
	Synopsis    string  `json:"synopsis"`
	ImageURL    *string `json:"imageUrl,omitempty"`

	// parent is a non-owning back-reference, read only to render the
	// owning show's title next to episode artwork.
	parent *ProgramSet
}

// NewItem normalizes raw catalog fields into an Item. Absent duration and
// publish date collapse to their zero values; an empty image URL becomes nil;
// the {width} placeholder in image URLs is resolved to a fixed width.
func NewItem(title string, duration int, pubDate string, downloadURL *string, sharingURL, description, synopsis, imageURL string) *Item {
	item := &Item{
		Title:       title,
		Duration:    duration,
		PubDate:     pubDate,
		DownloadURL: downloadURL,
		SharingURL:  sharingURL,
		Description: description,
		Synopsis:    synopsis,
	}
	if imageURL != "" {
		resolved := strings.ReplaceAll(imageURL, "{width}", imageWidth)
		item.ImageURL = &resolved
	}
	return item
}

// Valid reports whether the episode can appear in a feed.
// Episodes without a download URL are kept in the item list but never serialized.
func (i *Item) Valid() bool {
	return i.DownloadURL != nil
}

// ParentTitle returns the owning show's title, or "" for a detached item.
func (i *Item) ParentTitle() string {
	if i.parent == nil {
		return ""
	}
	return i.parent.Title
}
