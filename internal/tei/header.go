package tei

import "github.com/beevik/etree"

// xmlDeclaration is written at the top of every serialized document.
const xmlDeclaration = `version="1.0" encoding="UTF-8"`

// DefaultNote describes the Gumpenhuber repertoire manuscript.
const DefaultNote = "This manuscript, compiled by Philippe Gumpenhuber, contains a repertoire of all the spectacles " +
	"performed in Vienna during the years 1758-1759, and 1761-1763."

// Header holds the bibliographic values embedded in a new teiHeader.
type Header struct {
	Year        string
	Publisher   string
	PubPlace    string
	SeriesTitle string
	ExternalID  string
	Note        string // DefaultNote when empty
}

// VolumeTitle is the main title of a yearly volume. It is used for both
// titleStmt/title and sourceDesc/bibl/title.
func VolumeTitle(year string) string {
	return "Repertoire de tous les Spectacles " + year
}

// BuildHeader creates a new document whose TEI root holds only the
// teiHeader. Values are assigned as literal text.
func BuildHeader(h Header) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", xmlDeclaration)

	root := doc.CreateElement("TEI")
	root.CreateAttr("xmlns", TEINamespace)

	fileDesc := root.CreateElement("teiHeader").CreateElement("fileDesc")

	title := fileDesc.CreateElement("titleStmt").CreateElement("title")
	title.CreateAttr("type", "main")
	title.SetText(VolumeTitle(h.Year))

	publication := fileDesc.CreateElement("publicationStmt")
	publication.CreateElement("publisher").SetText(h.Publisher)
	publication.CreateElement("pubPlace").SetText(h.PubPlace)
	publication.CreateElement("date").SetText(h.Year)

	fileDesc.CreateElement("seriesStmt").CreateElement("title").SetText(h.SeriesTitle)

	bibl := fileDesc.CreateElement("sourceDesc").CreateElement("bibl")
	biblTitle := bibl.CreateElement("title")
	biblTitle.CreateAttr("type", "main")
	biblTitle.SetText(VolumeTitle(h.Year))

	idno := bibl.CreateElement("idno")
	idno.CreateAttr("type", "external")
	idno.SetText(h.ExternalID)

	note := h.Note
	if note == "" {
		note = DefaultNote
	}
	bibl.CreateElement("note").SetText(note)

	return doc
}
