package tei

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// indentUnit is one level of pretty-print indentation.
const indentUnit = "  "

// Serialize renders doc as UTF-8 with an XML declaration and indentation.
//
// Indentation is only applied to element-only content. An element holding
// non-whitespace text (mixed content), CDATA, or xml:space="preserve" is
// written exactly as parsed, including everything below it. Text is escaped
// in canonical form (&, <, > only).
//
// Serialize rewrites the whitespace tokens of doc in place; calling it twice
// yields the same bytes.
func Serialize(doc *etree.Document) ([]byte, error) {
	root := doc.Root()
	if root == nil {
		return nil, ErrNoRoot
	}

	normalizeProlog(doc)
	indent(root, 0)

	doc.WriteSettings.CanonicalText = true
	doc.WriteSettings.CanonicalAttrVal = true
	doc.WriteSettings.CanonicalEndTags = false

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	return append(out, '\n'), nil
}

// normalizeProlog puts exactly one XML declaration first and separates the
// remaining document-level tokens (comments, doctype, root) by newlines.
func normalizeProlog(doc *etree.Document) {
	var kept []etree.Token
	for _, t := range doc.Child {
		switch v := t.(type) {
		case *etree.ProcInst:
			if v.Target == "xml" {
				continue
			}
		case *etree.CharData:
			continue
		}
		kept = append(kept, t)
	}

	for len(doc.Child) > 0 {
		doc.RemoveChildAt(len(doc.Child) - 1)
	}

	doc.AddChild(etree.NewProcInst("xml", xmlDeclaration))
	for _, t := range kept {
		doc.AddChild(etree.NewText("\n"))
		doc.AddChild(t)
	}
}

// indent replaces the whitespace between the children of an element-only
// element with newline plus depth-based padding, recursively.
func indent(el *etree.Element, depth int) {
	if preservesSpace(el) {
		return
	}

	var kids []etree.Token
	for _, t := range el.Child {
		if cd, ok := t.(*etree.CharData); ok {
			if cd.IsCData() || !cd.IsWhitespace() {
				return // mixed content
			}
			continue
		}
		kids = append(kids, t)
	}
	if len(kids) == 0 {
		return
	}

	for len(el.Child) > 0 {
		el.RemoveChildAt(len(el.Child) - 1)
	}

	pad := "\n" + strings.Repeat(indentUnit, depth+1)
	for _, kid := range kids {
		el.AddChild(etree.NewText(pad))
		el.AddChild(kid)
		if child, ok := kid.(*etree.Element); ok {
			indent(child, depth+1)
		}
	}
	el.AddChild(etree.NewText("\n" + strings.Repeat(indentUnit, depth)))
}

func preservesSpace(el *etree.Element) bool {
	return el.SelectAttrValue("xml:space", "") == "preserve"
}
