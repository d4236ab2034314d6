package tei

import (
	"strconv"

	"github.com/beevik/etree"
)

// Assemble appends a facsimile section and a text/body/div section to the
// root of doc, moving the selected elements out of their source tree.
// Surfaces go to facsimile in page order. For each page the div receives a
// pb element followed by the page content. It returns the number of moved
// elements.
//
// Prefixed namespace declarations of source (when non-nil) are copied onto
// the destination root so that moved prefixed elements still resolve.
func Assemble(doc *etree.Document, source *etree.Element, sel Selection) (int, error) {
	root := doc.Root()
	if root == nil {
		return 0, ErrNoRoot
	}
	if source != nil {
		copyNamespaceDecls(source, root)
	}

	moved := 0
	facsimile := root.CreateElement("facsimile")
	for _, page := range sel.Pages {
		for _, surface := range page.Surfaces {
			Move(surface, facsimile)
			moved++
		}
	}

	div := root.CreateElement("text").CreateElement("body").CreateElement("div")
	for _, page := range sel.Pages {
		pb := div.CreateElement("pb")
		pb.CreateAttr("facs", PageFacs(page.Page))
		pb.CreateAttr("n", strconv.Itoa(page.Page))
		pb.CreateAttr("xml:id", PageBreakID(page.Page))

		for _, el := range page.Content() {
			Move(el, div)
			moved++
		}
	}
	return moved, nil
}

// Move detaches el from its current parent and appends it to dst.
func Move(el, dst *etree.Element) {
	if parent := el.Parent(); parent != nil {
		parent.RemoveChild(el)
	}
	dst.AddChild(el)
}

func copyNamespaceDecls(from, to *etree.Element) {
	for _, a := range from.Attr {
		if a.Space != "xmlns" {
			continue
		}
		key := "xmlns:" + a.Key
		if to.SelectAttr(key) == nil {
			to.CreateAttr(key, a.Value)
		}
	}
}
