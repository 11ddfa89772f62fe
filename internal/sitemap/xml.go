package sitemap

import (
	"encoding/xml"
	"time"
)

// xmlns is the sitemap protocol namespace, required on both document kinds.
const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// URLSet is a sitemap <urlset> document.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL is a single <url> entry. LastMod is omitted when unknown.
type URL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Index is a <sitemapindex> document enumerating shard locations.
type Index struct {
	XMLName  xml.Name `xml:"sitemapindex"`
	Xmlns    string   `xml:"xmlns,attr"`
	Sitemaps []Ref    `xml:"sitemap"`
}

// Ref is a single <sitemap> entry in an index.
type Ref struct {
	Loc string `xml:"loc"`
}

// NewURLSet converts entries to a renderable <urlset>.
func NewURLSet(entries []Entry) URLSet {
	set := URLSet{Xmlns: xmlns, URLs: make([]URL, 0, len(entries))}
	for _, e := range entries {
		u := URL{Loc: e.URL}
		if !e.LastModified.IsZero() {
			u.LastMod = e.LastModified.UTC().Format(time.RFC3339)
		}
		set.URLs = append(set.URLs, u)
	}
	return set
}

// NewIndex converts shard locations to a renderable <sitemapindex>.
func NewIndex(locs []string) Index {
	idx := Index{Xmlns: xmlns, Sitemaps: make([]Ref, 0, len(locs))}
	for _, loc := range locs {
		idx.Sitemaps = append(idx.Sitemaps, Ref{Loc: loc})
	}
	return idx
}

// Render marshals a sitemap document with the XML declaration prepended.
func Render(doc any) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}
