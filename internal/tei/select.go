package tei

import (
	"slices"
	"strings"

	"github.com/beevik/etree"
)

// ContentKind tells which kind of content a page contributes.
type ContentKind int

const (
	ContentNone  ContentKind = iota // nothing matched
	ContentText                     // ab blocks
	ContentTable                    // table elements
)

func (k ContentKind) String() string {
	switch k {
	case ContentText:
		return "text"
	case ContentTable:
		return "table"
	default:
		return "none"
	}
}

// PageSelection holds handles into the source tree for one page.
// Blocks is always empty when Tables is not.
type PageSelection struct {
	Page     int
	Surfaces []*etree.Element
	Tables   []*etree.Element
	Blocks   []*etree.Element
}

// Kind reports the content kind of the page.
func (p PageSelection) Kind() ContentKind {
	switch {
	case len(p.Tables) > 0:
		return ContentTable
	case len(p.Blocks) > 0:
		return ContentText
	default:
		return ContentNone
	}
}

// Content returns the elements that follow the page break.
func (p PageSelection) Content() []*etree.Element {
	if len(p.Tables) > 0 {
		return p.Tables
	}
	return p.Blocks
}

// Selection is the result of Select, one entry per requested page in
// ascending order.
type Selection struct {
	Pages []PageSelection
}

// Nodes counts every selected element.
func (s Selection) Nodes() int {
	n := 0
	for _, p := range s.Pages {
		n += len(p.Surfaces) + len(p.Content())
	}
	return n
}

// index groups the TEI elements of a source tree the selector cares about,
// each list in document order.
type index struct {
	surfaces map[string][]*etree.Element // by xml:id
	tables   map[string][]*etree.Element // by facs
	blocks   []*etree.Element            // every ab
}

// Select finds, for every page, the surfaces, tables and text blocks of the
// source tree rooted at root. Pages are deduplicated and processed in
// ascending order. Surfaces are taken for every page before any content.
// An element is handed to at most one page, and never once an ancestor has
// been taken: a taken subtree is no longer part of the source. Matches of a
// single lookup are all taken, nested or not. The tree is not modified.
func Select(root *etree.Element, ns Namespaces, pages []int) (Selection, error) {
	if root == nil {
		return Selection{}, ErrNoRoot
	}
	teiURI, ok := ns.TEI()
	if !ok {
		return Selection{}, ErrMissingNamespace
	}

	idx := &index{
		surfaces: make(map[string][]*etree.Element),
		tables:   make(map[string][]*etree.Element),
	}
	idx.build(root, teiURI)

	sorted := slices.Clone(pages)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	claimed := make(map[*etree.Element]bool)
	take := func(candidates []*etree.Element) []*etree.Element {
		var out []*etree.Element
		for _, el := range candidates {
			if claimed[el] || claimedAncestor(el, claimed) {
				continue
			}
			out = append(out, el)
		}
		for _, el := range out {
			claimed[el] = true
		}
		return out
	}

	sel := Selection{Pages: make([]PageSelection, len(sorted))}
	for i, n := range sorted {
		sel.Pages[i] = PageSelection{Page: n, Surfaces: take(idx.surfaces[SurfaceID(n)])}
	}
	for i, n := range sorted {
		page := &sel.Pages[i]
		page.Tables = take(idx.tables[TableFacs(n)])
		if len(page.Tables) == 0 {
			prefix := BlockFacsPrefix(n)
			page.Blocks = take(slices.DeleteFunc(slices.Clone(idx.blocks), func(el *etree.Element) bool {
				return !strings.Contains(el.SelectAttrValue("facs", ""), prefix)
			}))
		}
	}
	return sel, nil
}

// claimedAncestor reports whether an ancestor of el was already taken, in
// which case el leaves the source tree together with it.
func claimedAncestor(el *etree.Element, claimed map[*etree.Element]bool) bool {
	for p := el.Parent(); p != nil; p = p.Parent() {
		if claimed[p] {
			return true
		}
	}
	return false
}

// build walks the tree once in document order.
func (idx *index) build(el *etree.Element, teiURI string) {
	if el.NamespaceURI() == teiURI {
		switch el.Tag {
		case "surface":
			if id := el.SelectAttrValue("xml:id", ""); id != "" {
				idx.surfaces[id] = append(idx.surfaces[id], el)
			}
		case "table":
			if facs := el.SelectAttrValue("facs", ""); facs != "" {
				idx.tables[facs] = append(idx.tables[facs], el)
			}
		case "ab":
			idx.blocks = append(idx.blocks, el)
		}
	}
	for _, child := range el.ChildElements() {
		idx.build(child, teiURI)
	}
}
