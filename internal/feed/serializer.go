// Package feed turns a populated program set into an RSS feed document.
// Text content is escaped by the XML encoder; attribute values carry URLs
// as-is. The enclosure length attribute is deliberately left empty, the
// exact byte size of the media is never fetched.
package feed

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/mbarthauer/audiothek2rss/internal/models"
)

const audioMIMEType = "audio/mpeg"

// indent is the pretty-printing unit of the emitted documents.
const indent = "    "

// Build assembles the feed document for one program set. Episodes without
// a download URL are skipped; the caller decides whether a document with
// zero items is written at all.
func Build(ps *models.ProgramSet) *RSS {
	channel := &Channel{
		Title:       ps.Title,
		Link:        ps.SharingURL,
		Description: ps.Synopsis,
		AtomLink: AtomLink{
			Href: selfHref,
			Rel:  "self",
			Type: "application/rss+xml",
		},
	}

	if ps.ImageURL != nil {
		channel.Image = &ChannelImage{
			URL:   *ps.ImageURL,
			Title: ps.Title,
		}
		if ps.Path != "" {
			channel.Image.Link = siteOrigin + ps.Path
		}
	}

	for _, item := range ps.Items {
		if !item.Valid() {
			continue
		}
		channel.Items = append(channel.Items, buildItem(item))
	}

	return &RSS{Channel: channel}
}

func buildItem(item *models.Item) *Item {
	entry := &Item{
		Title:       item.Title,
		Description: item.Synopsis,
		GUID:        item.SharingURL,
		Link:        item.SharingURL,
		Enclosure: Enclosure{
			URL:  *item.DownloadURL,
			Type: audioMIMEType,
		},
		MediaContent: MediaContent{
			URL:      *item.DownloadURL,
			Medium:   "audio",
			Type:     audioMIMEType,
			Duration: item.Duration,
		},
		PubDate:        item.PubDate,
		ItunesDuration: item.Duration,
	}

	if item.ImageURL != nil {
		entry.Image = &ItemImage{
			URL:   *item.ImageURL,
			Title: item.ParentTitle(),
		}
		entry.ItunesImage = &ItunesImage{Href: *item.ImageURL}
	}

	return entry
}

// Marshal renders the document as pretty-printed UTF-8 XML with a header.
func Marshal(doc *RSS) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", indent)
	if err != nil {
		return nil, fmt.Errorf("marshal feed: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// WriteFile serializes the document to the given path.
func WriteFile(path string, doc *RSS) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write feed: %w", err)
	}
	return nil
}
