package sitemap

import (
	"sort"
	"time"

	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/pages"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/routing"
)

// Entry is one sitemap URL plus the last modification time of the record
// that produced it.
type Entry struct {
	URL          string
	LastModified time.Time
}

// BuildEntries expands each record into the full set of URLs a crawler should
// discover: the geographic hub pages plus the service pages beneath them.
// This is deliberately a superset of the records' own canonical paths. A page
// record addressed by its neighborhood+service URL still advertises the zip
// hub and zip+service URLs above it so the whole hierarchy stays indexed.
//
// Duplicate URLs collapse to one entry carrying the newest lastmod. Output is
// sorted by URL so repeated runs over the same records are byte identical.
func BuildEntries(records []*pages.Page, urls *URLBuilder) []Entry {
	lastmod := make(map[string]time.Time)
	for _, rec := range records {
		for _, path := range expandPaths(rec) {
			loc := urls.Page(path)
			if ts, seen := lastmod[loc]; !seen || rec.UpdatedAt.After(ts) {
				lastmod[loc] = rec.UpdatedAt
			}
		}
	}

	entries := make([]Entry, 0, len(lastmod))
	for loc, ts := range lastmod {
		entries = append(entries, Entry{URL: loc, LastModified: ts})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].URL < entries[j].URL
	})
	return entries
}

// expandPaths lists the hierarchy paths one record contributes. Malformed
// segments drop the paths that depend on them rather than erroring; a record
// with no valid geography contributes nothing.
func expandPaths(rec *pages.Page) []string {
	loc := rec.Locator()
	if !routing.IsValidSlug(loc.CountySlug) || routing.IsReservedTopSegment(loc.CountySlug) {
		return nil
	}

	county := loc.CountySlug
	zip := loc.Zip
	if !routing.IsValidZip(zip) {
		zip = ""
	}
	city := loc.CitySlug
	if !routing.IsValidSlug(city) {
		city = ""
	}
	nbhd := loc.NeighborhoodSlug
	if !routing.IsValidSlug(nbhd) {
		nbhd = ""
	}
	svc := loc.ServiceKey
	if !routing.IsValidSlug(svc) {
		svc = ""
	}

	var paths []string
	switch {
	case zip != "":
		paths = append(paths, "/"+county+"/"+zip)
		if svc != "" {
			paths = append(paths, "/"+county+"/"+zip+"/s/"+svc)
		}
		if nbhd != "" {
			paths = append(paths, "/"+county+"/"+zip+"/n/"+nbhd)
			if svc != "" {
				paths = append(paths, "/"+county+"/"+zip+"/n/"+nbhd+"/"+svc)
			}
		}
	case city != "":
		if svc != "" {
			paths = append(paths, "/"+county+"/"+city+"/s/"+svc)
		}
		if nbhd != "" {
			paths = append(paths, "/"+county+"/"+city+"/n/"+nbhd)
		}
	}
	return paths
}
