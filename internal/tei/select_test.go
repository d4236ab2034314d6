package tei

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestSelect - Per-page matching on the volume fixture
// ---------------------------------------------------------------------------

func TestSelect(t *testing.T) {
	t.Parallel()

	doc := loadVolume(t)

	sel, err := Select(doc.Root(), DefaultNamespaces(), pageRange(81, 84))
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if len(sel.Pages) != 3 {
		t.Fatalf("len(Pages) = %d, want 3", len(sel.Pages))
	}

	tests := []struct {
		page     int
		kind     ContentKind
		surfaces int
		content  []string // facs values in order
	}{
		{page: 81, kind: ContentText, surfaces: 1, content: []string{"#facs_81_r1", "#facs_81_r2"}},
		{page: 82, kind: ContentTable, surfaces: 1, content: []string{"#facs_82_t1"}},
		{page: 83, kind: ContentText, surfaces: 1, content: []string{"#facs_83_r1"}},
	}

	for i, tt := range tests {
		p := sel.Pages[i]
		if p.Page != tt.page {
			t.Errorf("Pages[%d].Page = %d, want %d", i, p.Page, tt.page)
		}
		if p.Kind() != tt.kind {
			t.Errorf("page %d: Kind() = %v, want %v", tt.page, p.Kind(), tt.kind)
		}
		if len(p.Surfaces) != tt.surfaces {
			t.Errorf("page %d: %d surfaces, want %d", tt.page, len(p.Surfaces), tt.surfaces)
		}
		if got := p.Surfaces[0].SelectAttrValue("xml:id", ""); got != SurfaceID(tt.page) {
			t.Errorf("page %d: surface id = %q", tt.page, got)
		}
		content := p.Content()
		if len(content) != len(tt.content) {
			t.Fatalf("page %d: %d content nodes, want %d", tt.page, len(content), len(tt.content))
		}
		for j, want := range tt.content {
			if got := content[j].SelectAttrValue("facs", ""); got != want {
				t.Errorf("page %d: content[%d] facs = %q, want %q", tt.page, j, got, want)
			}
		}
	}

	if got := sel.Nodes(); got != 3+4 {
		t.Errorf("Nodes() = %d, want 7", got)
	}
}

// ---------------------------------------------------------------------------
// TestSelect_TablePrecedence - A table suppresses the page's ab blocks
// ---------------------------------------------------------------------------

func TestSelect_TablePrecedence(t *testing.T) {
	t.Parallel()

	doc := loadVolume(t)

	sel, err := Select(doc.Root(), DefaultNamespaces(), []int{82})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	p := sel.Pages[0]
	if len(p.Tables) != 1 {
		t.Fatalf("len(Tables) = %d, want 1", len(p.Tables))
	}
	if len(p.Blocks) != 0 {
		t.Errorf("len(Blocks) = %d, want 0: the page has an ab but its table takes precedence", len(p.Blocks))
	}
}

// ---------------------------------------------------------------------------
// TestSelect_Misses - Pages absent from the source match nothing
// ---------------------------------------------------------------------------

func TestSelect_Misses(t *testing.T) {
	t.Parallel()

	doc := loadVolume(t)

	sel, err := Select(doc.Root(), DefaultNamespaces(), []int{8, 200})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	for _, p := range sel.Pages {
		if p.Kind() != ContentNone || len(p.Surfaces) != 0 {
			t.Errorf("page %d: kind %v with %d surfaces, want nothing", p.Page, p.Kind(), len(p.Surfaces))
		}
	}
}

// ---------------------------------------------------------------------------
// TestSelect_OrderAndDuplicates - Pages sorted and deduplicated
// ---------------------------------------------------------------------------

func TestSelect_OrderAndDuplicates(t *testing.T) {
	t.Parallel()

	doc := loadVolume(t)

	sel, err := Select(doc.Root(), DefaultNamespaces(), []int{83, 81, 83, 82})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	var got []int
	for _, p := range sel.Pages {
		got = append(got, p.Page)
	}
	want := []int{81, 82, 83}
	if len(got) != len(want) {
		t.Fatalf("pages = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pages = %v, want %v", got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestSelect_DoesNotMutate - Selection only returns handles
// ---------------------------------------------------------------------------

func TestSelect_DoesNotMutate(t *testing.T) {
	t.Parallel()

	doc := loadVolume(t)
	before := countTag(doc.Root(), "ab")

	sel, err := Select(doc.Root(), DefaultNamespaces(), pageRange(80, 84))
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if after := countTag(doc.Root(), "ab"); after != before {
		t.Errorf("ab count changed from %d to %d", before, after)
	}
	for _, p := range sel.Pages {
		for _, el := range p.Content() {
			if !contains(doc.Root(), el) {
				t.Errorf("page %d: selected element is not in the source tree", p.Page)
			}
		}
	}
}

// ---------------------------------------------------------------------------
// TestSelect_ClaimsOnce - A block spanning pages goes to the first page
// ---------------------------------------------------------------------------

func TestSelect_ClaimsOnce(t *testing.T) {
	t.Parallel()

	doc, err := ParseBytes([]byte(`<TEI xmlns="http://www.tei-c.org/ns/1.0"><text><body>
<ab facs="#facs_90_r1 #facs_91_r1">spanning</ab>
<ab facs="#facs_91_r2">own</ab>
</body></text></TEI>`))
	if err != nil {
		t.Fatal(err)
	}

	sel, err := Select(doc.Root(), DefaultNamespaces(), []int{90, 91})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if n := len(sel.Pages[0].Blocks); n != 1 {
		t.Errorf("page 90: %d blocks, want 1", n)
	}
	if n := len(sel.Pages[1].Blocks); n != 1 {
		t.Fatalf("page 91: %d blocks, want 1", n)
	}
	if got := sel.Pages[1].Blocks[0].Text(); got != "own" {
		t.Errorf("page 91 block = %q, want %q", got, "own")
	}
}

// ---------------------------------------------------------------------------
// TestSelect_NestedInTakenSubtree - Descendants leave with their ancestor
// ---------------------------------------------------------------------------

// nestedSource has a page-82 table whose cell holds a page-83 block, and a
// page-84 surface wrapping a page-84 block.
const nestedSource = `<TEI xmlns="http://www.tei-c.org/ns/1.0">
<facsimile><surface xml:id="facs_84"><ab facs="#facs_84_r1">in surface</ab></surface></facsimile>
<text><body>
<table facs="#facs_82_t1"><row><cell><ab facs="#facs_83_r1">inner</ab></cell></row></table>
<ab facs="#facs_83_r2">outer</ab>
</body></text></TEI>`

func TestSelect_NestedInTakenSubtree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		pages  []int
		page   int
		kind   ContentKind
		blocks []string // text of the selected blocks
	}{
		{name: "block inside earlier table", pages: []int{82, 83}, page: 83, kind: ContentText, blocks: []string{"outer"}},
		{name: "block inside surface", pages: []int{84}, page: 84, kind: ContentNone},
		{name: "table page not requested", pages: []int{83}, page: 83, kind: ContentText, blocks: []string{"inner", "outer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := ParseBytes([]byte(nestedSource))
			if err != nil {
				t.Fatal(err)
			}
			sel, err := Select(doc.Root(), DefaultNamespaces(), tt.pages)
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}

			var p PageSelection
			for _, candidate := range sel.Pages {
				if candidate.Page == tt.page {
					p = candidate
				}
			}
			if p.Kind() != tt.kind {
				t.Errorf("page %d kind = %v, want %v", tt.page, p.Kind(), tt.kind)
			}
			var got []string
			for _, el := range p.Blocks {
				got = append(got, el.Text())
			}
			if len(got) != len(tt.blocks) {
				t.Fatalf("page %d blocks = %v, want %v", tt.page, got, tt.blocks)
			}
			for i := range got {
				if got[i] != tt.blocks[i] {
					t.Errorf("page %d blocks = %v, want %v", tt.page, got, tt.blocks)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestSelect_Namespaces - Matching is namespace-aware
// ---------------------------------------------------------------------------

func TestSelect_Namespaces(t *testing.T) {
	t.Parallel()

	t.Run("elements outside the TEI namespace are ignored", func(t *testing.T) {
		t.Parallel()

		doc, err := ParseBytes([]byte(`<TEI><facsimile><surface xml:id="facs_1"/></facsimile></TEI>`))
		if err != nil {
			t.Fatal(err)
		}
		sel, err := Select(doc.Root(), DefaultNamespaces(), []int{1})
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		if n := len(sel.Pages[0].Surfaces); n != 0 {
			t.Errorf("%d surfaces, want 0", n)
		}
	})

	t.Run("prefixed TEI elements match", func(t *testing.T) {
		t.Parallel()

		doc, err := ParseBytes([]byte(`<t:TEI xmlns:t="http://www.tei-c.org/ns/1.0"><t:facsimile><t:surface xml:id="facs_1"/></t:facsimile></t:TEI>`))
		if err != nil {
			t.Fatal(err)
		}
		sel, err := Select(doc.Root(), DefaultNamespaces(), []int{1})
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		if n := len(sel.Pages[0].Surfaces); n != 1 {
			t.Errorf("%d surfaces, want 1", n)
		}
	})

	t.Run("missing tei binding", func(t *testing.T) {
		t.Parallel()

		doc := loadVolume(t)
		_, err := Select(doc.Root(), Namespaces{"xml": XMLNamespace}, []int{81})
		if !errors.Is(err, ErrMissingNamespace) {
			t.Errorf("Select() error = %v, want ErrMissingNamespace", err)
		}
	})

	t.Run("nil root", func(t *testing.T) {
		t.Parallel()

		_, err := Select(nil, DefaultNamespaces(), []int{81})
		if !errors.Is(err, ErrNoRoot) {
			t.Errorf("Select(nil) error = %v, want ErrNoRoot", err)
		}
	})
}
