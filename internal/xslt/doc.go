// Package xslt applies XSLT 1.0 stylesheets to serialized documents.
//
// Transformer is the seam between the splitter and libxslt. Compile builds
// the libxslt-backed implementation; tests substitute their own through a
// Factory.
package xslt
