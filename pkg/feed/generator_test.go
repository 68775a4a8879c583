package feed

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// rssDoc mirrors the RSS 2.0 elements the blog feed must carry. Parsing the
// serialized output keeps the assertions at the schema level rather than
// comparing bytes.
type rssDoc struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel struct {
		Title       string `xml:"title"`
		Link        string `xml:"link"`
		Description string `xml:"description"`
		Items       []struct {
			Title       string `xml:"title"`
			Link        string `xml:"link"`
			Description string `xml:"description"`
			PubDate     string `xml:"pubDate"`
		} `xml:"item"`
	} `xml:"channel"`
}

func testGenerator() *Generator {
	return NewGenerator(
		"Interactions.Rest Blog",
		"A blog about Workers and web development",
		"https://interactions.rest",
	)
}

func testItems() []Item {
	return []Item{
		{
			Title:       "World",
			Link:        "https://interactions.rest/blog/world",
			Description: "Second post.",
			Created:     time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC),
			ID:          "https://interactions.rest/blog/world",
		},
		{
			Title:       "Hello",
			Link:        "https://interactions.rest/blog/hello",
			Description: "First post.",
			Created:     time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
			ID:          "https://interactions.rest/blog/hello",
		},
	}
}

func parseRSS(t *testing.T, data []byte) rssDoc {
	t.Helper()

	var doc rssDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Feed output is not well-formed XML: %v", err)
	}
	return doc
}

func TestNewGenerator(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		link        string
		expected    *Generator
	}{
		{
			name:        "blog generator",
			title:       "Interactions.Rest Blog",
			description: "A blog about Workers and web development",
			link:        "https://interactions.rest",
			expected: &Generator{
				Title:       "Interactions.Rest Blog",
				Description: "A blog about Workers and web development",
				Link:        "https://interactions.rest",
			},
		},
		{
			name:        "empty values",
			title:       "",
			description: "",
			link:        "",
			expected:    &Generator{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewGenerator(tt.title, tt.description, tt.link)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("NewGenerator() = %+v, expected %+v", result, tt.expected)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	g := testGenerator()
	items := testItems()

	feed := g.Generate(items)

	if feed.Title != g.Title {
		t.Errorf("feed title = %q, expected %q", feed.Title, g.Title)
	}
	if feed.Link.Href != g.Link {
		t.Errorf("feed link = %q, expected %q", feed.Link.Href, g.Link)
	}
	if len(feed.Items) != len(items) {
		t.Fatalf("feed has %d items, expected %d", len(feed.Items), len(items))
	}

	for i, item := range items {
		got := feed.Items[i]
		if got.Title != item.Title {
			t.Errorf("item %d title = %q, expected %q", i, got.Title, item.Title)
		}
		if got.Link.Href != item.Link {
			t.Errorf("item %d link = %q, expected %q", i, got.Link.Href, item.Link)
		}
		if !got.Created.Equal(item.Created) {
			t.Errorf("item %d created = %v, expected %v", i, got.Created, item.Created)
		}
	}

	if !feed.Created.IsZero() || !feed.Updated.IsZero() {
		t.Error("feed carries a build timestamp, output would not be reproducible")
	}
}

func TestWriteRSS(t *testing.T) {
	var buf bytes.Buffer
	if err := testGenerator().WriteRSS(&buf, testItems()); err != nil {
		t.Fatalf("WriteRSS() error: %v", err)
	}

	doc := parseRSS(t, buf.Bytes())

	if doc.Version != "2.0" {
		t.Errorf("rss version = %q, expected \"2.0\"", doc.Version)
	}
	if doc.Channel.Title != "Interactions.Rest Blog" {
		t.Errorf("channel title = %q", doc.Channel.Title)
	}
	if doc.Channel.Link != "https://interactions.rest" {
		t.Errorf("channel link = %q", doc.Channel.Link)
	}
	if doc.Channel.Description != "A blog about Workers and web development" {
		t.Errorf("channel description = %q", doc.Channel.Description)
	}

	items := testItems()
	if len(doc.Channel.Items) != len(items) {
		t.Fatalf("feed has %d items, expected %d", len(doc.Channel.Items), len(items))
	}

	for i, item := range items {
		got := doc.Channel.Items[i]
		if got.Title != item.Title {
			t.Errorf("item %d title = %q, expected %q", i, got.Title, item.Title)
		}
		if got.Link != item.Link {
			t.Errorf("item %d link = %q, expected %q", i, got.Link, item.Link)
		}
		expectedDate := item.Created.Format(time.RFC1123Z)
		if got.PubDate != expectedDate {
			t.Errorf("item %d pubDate = %q, expected %q", i, got.PubDate, expectedDate)
		}
	}
}

func TestWriteRSSEmptyFeed(t *testing.T) {
	var buf bytes.Buffer
	if err := testGenerator().WriteRSS(&buf, nil); err != nil {
		t.Fatalf("WriteRSS() error on empty feed: %v", err)
	}

	doc := parseRSS(t, buf.Bytes())
	if len(doc.Channel.Items) != 0 {
		t.Errorf("empty feed has %d items, expected 0", len(doc.Channel.Items))
	}
	if doc.Channel.Title != "Interactions.Rest Blog" {
		t.Errorf("channel title = %q", doc.Channel.Title)
	}
}

func TestWriteRSSIdempotent(t *testing.T) {
	g := testGenerator()
	items := testItems()

	var first, second bytes.Buffer
	if err := g.WriteRSS(&first, items); err != nil {
		t.Fatalf("first WriteRSS() error: %v", err)
	}
	if err := g.WriteRSS(&second, items); err != nil {
		t.Fatalf("second WriteRSS() error: %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("consecutive feed generations differ for an unchanged item set")
	}
}

func TestSaveToFile(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "feed", "blog.xml")
	if err := testGenerator().SaveToFile(testItems(), outputPath); err != nil {
		t.Fatalf("SaveToFile() error: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}

	doc := parseRSS(t, data)
	if len(doc.Channel.Items) != 2 {
		t.Errorf("saved feed has %d items, expected 2", len(doc.Channel.Items))
	}
}

func TestValidate(t *testing.T) {
	valid := testItems()

	tests := []struct {
		name        string
		generator   *Generator
		items       []Item
		expectError bool
	}{
		{
			name:        "valid feed",
			generator:   testGenerator(),
			items:       valid,
			expectError: false,
		},
		{
			name:        "zero items is valid",
			generator:   testGenerator(),
			items:       nil,
			expectError: false,
		},
		{
			name:        "empty title",
			generator:   NewGenerator("", "desc", "https://interactions.rest"),
			items:       valid,
			expectError: true,
		},
		{
			name:        "empty link",
			generator:   NewGenerator("title", "desc", ""),
			items:       valid,
			expectError: true,
		},
		{
			name:        "empty description",
			generator:   NewGenerator("title", "", "https://interactions.rest"),
			items:       valid,
			expectError: true,
		},
		{
			name:      "item missing title",
			generator: testGenerator(),
			items: []Item{
				{Link: "https://interactions.rest/blog/x", Created: time.Now()},
			},
			expectError: true,
		},
		{
			name:      "item missing link",
			generator: testGenerator(),
			items: []Item{
				{Title: "X", Created: time.Now()},
			},
			expectError: true,
		},
		{
			name:      "item missing publish date",
			generator: testGenerator(),
			items: []Item{
				{Title: "X", Link: "https://interactions.rest/blog/x"},
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.generator.Validate(tt.items)
			if tt.expectError && err == nil {
				t.Error("Validate() returned nil, expected error")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Validate() error: %v", err)
			}
		})
	}
}
