// Package tei implements the tree-level stages of a page-range extraction
// from a TEI transcription: parsing, header construction, range-based
// selection, reassembly under a new root, and serialization.
//
// # Ownership
//
// Select never mutates the source tree. It returns handles (element
// pointers) grouped by page. Assemble then moves each handle: the element
// is removed from its source parent and attached to the destination
// document, so after assembly the source no longer contains it.
//
// # Identifier conventions
//
// For a page n the source document is expected to contain:
//
//	<surface xml:id="facs_n">              page image
//	<table facs="#facs_n_t1">              tabular page content
//	<ab facs="#facs_n_r1 ...">             text blocks, matched on "#facs_n_"
//
// A page with a table never contributes its text blocks.
package tei
