// Package pipeline holds the byte-level stages that run on serialized TEI,
// after the tree has been transformed and written back out.
//
// These stages never parse XML. They operate on the exact bytes produced
// by the serializer, so they can be tested against literal fixtures:
//   - line-break fixup around <lb/> markers (FixLineBreaks)
//
// Tree-level work (selection, assembly, pretty printing) lives in the tei
// package; the XSLT stage lives in the xslt package.
package pipeline
