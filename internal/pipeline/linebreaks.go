package pipeline

import (
	"bytes"
	"context"
)

// lbTag is the opening of a TEI line-break marker.
var lbTag = []byte("<lb")

// PostProcessor defines the contract for byte-level output cleanup.
type PostProcessor interface {
	PostProcess(ctx context.Context, data []byte) []byte
}

// LineBreakFixup removes spurious line breaks in front of <lb/> markers.
type LineBreakFixup struct{}

// PostProcess applies FixLineBreaks. The context is only checked for
// cancellation; a cancelled context returns data unchanged.
func (LineBreakFixup) PostProcess(ctx context.Context, data []byte) []byte {
	if ctx.Err() != nil {
		return data
	}
	return FixLineBreaks(data)
}

// FixLineBreaks flattens a run of newlines sitting directly in front of an
// <lb> tag onto the previous line. The run is kept when it follows the
// closing '>' of another tag and the marker carries attributes ("<lb "),
// which is how the first marker of a block is laid out.
//
// Only '\n' counts as a line break. The output is a new slice; FixLineBreaks
// is idempotent.
func FixLineBreaks(data []byte) []byte {
	if !bytes.Contains(data, lbTag) {
		return data
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\n' {
			out = append(out, data[i])
			continue
		}

		start, end := i, i
		for end < len(data) && data[end] == '\n' {
			end++
		}
		i = end - 1

		if !isLBTag(data[end:]) || keepBreak(data, start, end) {
			out = append(out, data[start:end]...)
		}
	}
	return out
}

// isLBTag reports whether b starts with an <lb> tag and not a longer name
// such as <lbl>.
func isLBTag(b []byte) bool {
	if !bytes.HasPrefix(b, lbTag) || len(b) == len(lbTag) {
		return false
	}
	switch b[len(lbTag)] {
	case ' ', '\t', '\n', '/', '>':
		return true
	}
	return false
}

// keepBreak reports whether the newline run data[start:end] separates a
// closing '>' from an attributed "<lb " marker.
func keepBreak(data []byte, start, end int) bool {
	if start == 0 || data[start-1] != '>' {
		return false
	}
	return bytes.HasPrefix(data[end:], []byte("<lb "))
}
