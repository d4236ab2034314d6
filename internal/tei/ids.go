package tei

import (
	"fmt"
	"strconv"
)

// SurfaceID is the xml:id of the surface element for page n.
func SurfaceID(n int) string {
	return "facs_" + strconv.Itoa(n)
}

// PageFacs is the facs reference carried by the page break of page n.
func PageFacs(n int) string {
	return "#" + SurfaceID(n)
}

// TableFacs is the facs value of the first table on page n.
func TableFacs(n int) string {
	return PageFacs(n) + "_t1"
}

// BlockFacsPrefix is matched as a substring of an ab element's facs value.
// The trailing underscore keeps page 8 from matching facs_81_*.
func BlockFacsPrefix(n int) string {
	return PageFacs(n) + "_"
}

// PageBreakID is the xml:id of the page break for page n: "img_" followed by
// n zero-padded to four digits (img_0081, img_0005, img_0100).
func PageBreakID(n int) string {
	return fmt.Sprintf("img_%04d", n)
}
