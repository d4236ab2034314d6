package tei

// Namespace URIs used by TEI documents.
const (
	TEINamespace = "http://www.tei-c.org/ns/1.0"
	XMLNamespace = "http://www.w3.org/XML/1998/namespace"
)

// Namespaces maps prefixes to namespace URIs for element matching.
type Namespaces map[string]string

// DefaultNamespaces returns the tei and xml bindings.
func DefaultNamespaces() Namespaces {
	return Namespaces{
		"tei": TEINamespace,
		"xml": XMLNamespace,
	}
}

// TEI returns the URI bound to the "tei" prefix.
func (ns Namespaces) TEI() (string, bool) {
	uri, ok := ns["tei"]
	return uri, ok && uri != ""
}
