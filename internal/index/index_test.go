package index

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestAggregator_Grouping(t *testing.T) {
	var agg Aggregator
	agg.Add("../rss/3.rss", "Zebra")
	agg.Add("../rss/1.rss", "Ärger")
	agg.Add("../rss/2.rss", "Apfel")

	groups := agg.Groups()
	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}

	if groups[0].Letter != "A" || groups[1].Letter != "Z" {
		t.Fatalf("letters = %q, %q, want A, Z", groups[0].Letter, groups[1].Letter)
	}

	a := groups[0].Entries
	if len(a) != 2 {
		t.Fatalf("len(A group) = %d, want 2", len(a))
	}
	// NFKD decomposes the umlaut, so "Apfel" sorts before "Ärger" ("A" + combining mark).
	if !strings.HasPrefix(a[0].Title, "Apfel") {
		t.Errorf("first A entry = %q, want Apfel", a[0].Title)
	}
	if !strings.HasPrefix(a[1].Title, "Ärger") {
		t.Errorf("second A entry = %q, want decomposed Ärger", a[1].Title)
	}

	if groups[1].Entries[0].Path != "../rss/3.rss" {
		t.Errorf("Z entry path = %q", groups[1].Entries[0].Path)
	}
}

func TestAggregator_EveryTitleInExactlyOneGroup(t *testing.T) {
	var agg Aggregator
	titles := []string{"Ärger", "Apfel", "Zebra", "ärger klein", "100 Sekunden", "Österreich"}
	for i, title := range titles {
		agg.Add("../rss/"+string(rune('a'+i))+".rss", title)
	}

	total := 0
	seen := make(map[string]bool)
	for _, group := range agg.Groups() {
		for _, entry := range group.Entries {
			if seen[entry.Path] {
				t.Errorf("entry %q appears in more than one group", entry.Path)
			}
			seen[entry.Path] = true
			total++
		}
	}
	if total != len(titles) {
		t.Errorf("grouped entries = %d, want %d", total, len(titles))
	}
}

func TestAggregator_Letters(t *testing.T) {
	var agg Aggregator
	agg.Add("p1", "Banane")
	agg.Add("p2", "apfel")

	letters := agg.Letters()
	if len(letters) != 2 {
		t.Fatalf("len(letters) = %d, want 2", len(letters))
	}
	if letters[0].Display != "A" || letters[0].Anchor != "#A" {
		t.Errorf("letters[0] = %+v", letters[0])
	}
	if letters[1].Display != "B" || letters[1].Anchor != "#B" {
		t.Errorf("letters[1] = %+v", letters[1])
	}
}

func TestRender(t *testing.T) {
	var agg Aggregator
	agg.Add("../rss/ardaudiothek_1.rss", "Kalk & Welk")
	agg.Add("../rss/ardaudiothek_2.rss", "Apfel <Spezial>")

	var buf bytes.Buffer
	err := Render(&buf, Page{
		Groups:  agg.Groups(),
		Letters: agg.Letters(),
		Date:    "2026-09-01",
		Args:    "--html --category-search Comedy",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("rendered page is not parseable HTML: %v", err)
	}

	nav := doc.Find("nav a")
	if nav.Length() != 2 {
		t.Fatalf("nav links = %d, want 2", nav.Length())
	}
	if href, _ := nav.First().Attr("href"); href != "#A" {
		t.Errorf("first nav href = %q, want #A", href)
	}

	headings := doc.Find("h2")
	if headings.Length() != 2 {
		t.Fatalf("h2 count = %d, want 2", headings.Length())
	}
	if id, _ := headings.First().Attr("id"); id != "A" {
		t.Errorf("first h2 id = %q, want A", id)
	}

	links := doc.Find("li a")
	if links.Length() != 2 {
		t.Fatalf("feed links = %d, want 2", links.Length())
	}
	// goquery unescapes text, so the special characters must round-trip.
	if text := links.First().Text(); text != "Apfel <Spezial>" {
		t.Errorf("first link text = %q", text)
	}
	if text := links.Last().Text(); text != "Kalk & Welk" {
		t.Errorf("last link text = %q", text)
	}
	if href, _ := links.Last().Attr("href"); href != "../rss/ardaudiothek_1.rss" {
		t.Errorf("last link href = %q", href)
	}

	footer := doc.Find("footer").Text()
	if !strings.Contains(footer, "2026-09-01") {
		t.Errorf("footer = %q, want run date", footer)
	}
	if !strings.Contains(footer, "--category-search Comedy") {
		t.Errorf("footer = %q, want invocation arguments", footer)
	}
}

func TestWriteFile(t *testing.T) {
	path := t.TempDir() + "/index.html"
	var agg Aggregator
	agg.Add("../rss/1.rss", "Apfel")

	if err := WriteFile(path, Page{Groups: agg.Groups(), Letters: agg.Letters(), Date: "2026-09-01"}); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}
