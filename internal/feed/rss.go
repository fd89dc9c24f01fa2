package feed

import "encoding/xml"

// siteOrigin prefixes the site-relative program path in the channel image link.
const siteOrigin = "https://www.ardaudiothek.de"

// selfHref is the fixed feed-discovery link emitted in every channel.
const selfHref = "ardaudiothek.html"

// RSS is the <rss> root element of a feed document.
type RSS struct {
	XMLName xml.Name `xml:"rss"`
	Channel *Channel `xml:"channel"`
}

// Channel holds one program's feed. Field order matches the element
// order of the emitted document.
type Channel struct {
	Title       string        `xml:"title"`
	Link        string        `xml:"link"`
	Image       *ChannelImage `xml:"image,omitempty"`
	Description string        `xml:"description"`
	AtomLink    AtomLink      `xml:"atom:link"`
	Items       []*Item       `xml:"item"`
}

// ChannelImage is the optional artwork block of a channel. Link is only
// set once the site-relative program path is known.
type ChannelImage struct {
	URL   string `xml:"url"`
	Title string `xml:"title"`
	Link  string `xml:"link,omitempty"`
}

// AtomLink is the self-referential feed-discovery element.
type AtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

// Item is one feed entry.
type Item struct {
	Title          string       `xml:"title"`
	Description    string       `xml:"description"`
	GUID           string       `xml:"guid"`
	Link           string       `xml:"link"`
	Enclosure      Enclosure    `xml:"enclosure"`
	MediaContent   MediaContent `xml:"media:content"`
	PubDate        string       `xml:"pubDate"`
	ItunesDuration int          `xml:"itunes:duration"`
	Image          *ItemImage   `xml:"image,omitempty"`
	ItunesImage    *ItunesImage `xml:"itunes:image,omitempty"`
}

// Enclosure points at the downloadable media. Length is a string so the
// attribute stays present but empty: the byte size is never computed.
type Enclosure struct {
	URL    string `xml:"url,attr"`
	Length string `xml:"length,attr"`
	Type   string `xml:"type,attr"`
}

// MediaContent mirrors the enclosure for media-RSS consumers.
type MediaContent struct {
	URL      string `xml:"url,attr"`
	Medium   string `xml:"medium,attr"`
	Type     string `xml:"type,attr"`
	Duration int    `xml:"duration,attr"`
}

// ItemImage is the per-episode artwork block; the title names the owning program.
type ItemImage struct {
	URL   string `xml:"url"`
	Title string `xml:"title"`
}

// ItunesImage is the platform-specific artwork hint.
type ItunesImage struct {
	Href string `xml:"href,attr"`
}
