package teisplit

import (
	"fmt"
	"path/filepath"
)

// IntermediateName returns the path of the untransformed extract:
// {dir}/{year}_{start}-{last}_before.xml, or {dir}/{year}_{start}_before.xml
// for a single page.
func IntermediateName(dir, year string, pages PageRange) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s_before.xml", year, pages.label("%d")))
}

// FinalName returns the path of the transformed extract with zero-padded
// page numbers: {dir}/{year}_{NNN}-{NNN}.xml, or {dir}/{year}_{NNN}.xml for
// a single page.
func FinalName(dir, year string, pages PageRange) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.xml", year, pages.label("%03d")))
}

// label formats the first and last page with verb, collapsing a single page.
func (r PageRange) label(verb string) string {
	if r.Len() == 1 {
		return fmt.Sprintf(verb, r.Start)
	}
	return fmt.Sprintf(verb+"-"+verb, r.Start, r.Last())
}
