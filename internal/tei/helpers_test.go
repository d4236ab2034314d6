package tei

import (
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
)

// loadVolume parses testdata/volume.xml, a four-page excerpt:
//   - page 80: one ab
//   - page 81: two ab blocks
//   - page 82: a table and an ab (table wins)
//   - page 83: one ab
func loadVolume(t *testing.T) *etree.Document {
	t.Helper()

	doc, err := ParseFile(filepath.Join("testdata", "volume.xml"))
	if err != nil {
		t.Fatalf("ParseFile(volume.xml) error = %v", err)
	}
	return doc
}

// pageRange returns [start, stop) as a slice.
func pageRange(start, stop int) []int {
	pages := make([]int, 0, stop-start)
	for n := start; n < stop; n++ {
		pages = append(pages, n)
	}
	return pages
}

// countTag counts elements with the given local name under el, el included.
func countTag(el *etree.Element, tag string) int {
	n := 0
	if el.Tag == tag {
		n++
	}
	for _, c := range el.ChildElements() {
		n += countTag(c, tag)
	}
	return n
}

// contains reports whether want is el or one of its descendants.
func contains(el, want *etree.Element) bool {
	if el == want {
		return true
	}
	for _, c := range el.ChildElements() {
		if contains(c, want) {
			return true
		}
	}
	return false
}
