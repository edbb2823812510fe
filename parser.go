package kanjivg

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/tempo-eng/kanjivg-go/internal/cache"
)

const (
	// strokeContainerPrefix identifies the group holding every stroke and
	// component group of the diagram.
	strokeContainerPrefix = "kvg:StrokePaths_"

	// numberContainerPrefix identifies the group holding the numeral
	// labels, positioned by matrix transforms.
	numberContainerPrefix = "kvg:StrokeNumbers_"
)

// Parser turns raw diagram markup into KanjiRecords. Each Parser owns its
// cache: parsing the same identifier twice returns the reference-identical
// record until ClearCache is called.
//
// Parser is safe for concurrent use. Concurrent first parses of the same
// identifier resolve to a single stored record (insert-if-absent).
type Parser struct {
	cache *cache.Cache[string, *KanjiRecord]
}

// NewParser creates a Parser with an empty cache.
func NewParser() *Parser {
	return &Parser{cache: cache.New[string, *KanjiRecord]()}
}

// Parse builds the normalized record for one diagram. The identifier keys
// the cache and names the record; the markup is the diagram document.
//
// Fails with *MalformedDiagramError when the document does not parse, has
// no stroke container, or contains zero usable strokes. Failures are not
// cached; a later call with corrected markup can still succeed.
func (p *Parser) Parse(id string, markup []byte) (*KanjiRecord, error) {
	rec, hit, err := p.cache.GetOrCreate(id, func() (*KanjiRecord, error) {
		return parseDiagram(id, markup)
	})
	if err != nil {
		return nil, err
	}
	if hit {
		Logger().Debug("parser cache hit", "id", id)
	}
	return rec, nil
}

// ClearCache drops every cached record. Records already handed out stay
// valid; the next Parse for any identifier produces a fresh record.
func (p *Parser) ClearCache() {
	p.cache.Clear()
	Logger().Debug("parser cache cleared")
}

// CachedCount returns the number of records currently cached.
func (p *Parser) CachedCount() int {
	return p.cache.Len()
}

func parseDiagram(id string, markup []byte) (*KanjiRecord, error) {
	root, err := decodeTree(bytes.NewReader(sanitizeMarkup(markup)))
	if err != nil {
		return nil, &MalformedDiagramError{ID: id, Cause: "document does not parse", Err: err}
	}

	container := root.find(func(n *xmlNode) bool {
		return n.name == "g" && strings.HasPrefix(n.attr("id"), strokeContainerPrefix)
	})
	if container == nil {
		return nil, &MalformedDiagramError{ID: id, Cause: "no stroke container"}
	}

	// Strokes in document order. That order is the canonical stroke order
	// and is never re-sorted by any other key.
	var strokeNodes []*xmlNode
	container.walk(func(n *xmlNode) {
		if n.name == "path" && isStrokeID(n.attr("id")) {
			strokeNodes = append(strokeNodes, n)
		}
	})
	if len(strokeNodes) == 0 {
		return nil, &MalformedDiagramError{ID: id, Cause: "zero usable strokes"}
	}

	strokes := make([]StrokeRecord, len(strokeNodes))
	numberOf := make(map[*xmlNode]int, len(strokeNodes))
	for i, n := range strokeNodes {
		strokes[i] = StrokeRecord{
			Number:  i + 1,
			Path:    n.attr("d"),
			TypeTag: n.attr("type"),
		}
		numberOf[n] = i + 1
	}

	rec := &KanjiRecord{
		ID:      id,
		Strokes: strokes,
	}
	rec.Character = containerGlyph(container)
	if rec.Character == "" {
		rec.Character = CharacterFromID(id)
	}

	parseGroups(rec, container, numberOf)
	parseNumberLabels(rec, root, id)

	return rec, nil
}

// isStrokeID reports whether an element id carries a stroke-index marker:
// a trailing "-s<digits>" segment, as in "kvg:04e2d-s1". The marker only
// gates collection; stroke numbers come from document order, never from
// the digits (id text is not guaranteed unique across nesting).
func isStrokeID(id string) bool {
	i := strings.LastIndex(id, "-s")
	if i < 0 || i+2 == len(id) {
		return false
	}
	for _, r := range id[i+2:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// containerGlyph extracts the character glyph declared on the stroke
// container or its topmost child group.
func containerGlyph(container *xmlNode) string {
	if el := container.attr("element"); el != "" {
		return el
	}
	for _, c := range container.children {
		if c.name == "g" {
			return c.attr("element")
		}
	}
	return ""
}

// parseGroups flattens every group beneath the container into rec.Groups
// with scoped stroke membership, assigns innermost group ownership to each
// stroke, marks radical strokes, and collects distinct components.
func parseGroups(rec *KanjiRecord, container *xmlNode, numberOf map[*xmlNode]int) {
	var gnodes []*xmlNode
	container.walk(func(n *xmlNode) {
		if n != container && n.name == "g" {
			gnodes = append(gnodes, n)
		}
	})

	seen := make(map[string]bool)
	for _, gn := range gnodes {
		gr := GroupRecord{
			ID:            gn.attr("id"),
			Element:       gn.attr("element"),
			Radical:       RadicalKind(gn.attr("radical")),
			Position:      gn.attr("position"),
			StrokeNumbers: scopedStrokes(gn, numberOf),
		}
		rec.Groups = append(rec.Groups, gr)

		// Direct path children: this group is their innermost owner.
		for _, c := range gn.children {
			if c.name != "path" {
				continue
			}
			if num, ok := numberOf[c]; ok {
				rec.Strokes[num-1].GroupID = gr.ID
			}
		}

		if gr.Element != "" && !seen[gr.Element] {
			seen[gr.Element] = true
			rec.Components = append(rec.Components, gr.Element)
		}
	}

	for i := range rec.Groups {
		gr := &rec.Groups[i]
		if gr.Radical == RadicalNone {
			continue
		}
		if rec.RadicalSummary == nil {
			rec.RadicalSummary = gr
		}
		for _, num := range gr.StrokeNumbers {
			rec.Strokes[num-1].Radical = true
		}
	}
}

// scopedStrokes collects the stroke numbers owned by a group. Direct path
// children are claimed; a nested group is descended into only if it does
// not declare a radical kind of its own — when it does, its subtree
// belongs exclusively to that nested group, so a containing positional
// group never over-claims an inner named radical's strokes.
//
// Path nodes map back to stroke numbers by node identity in the full
// ordered stroke list, not by re-parsing id strings.
func scopedStrokes(g *xmlNode, numberOf map[*xmlNode]int) []int {
	var nums []int
	var visit func(n *xmlNode)
	visit = func(n *xmlNode) {
		for _, c := range n.children {
			switch c.name {
			case "path":
				if num, ok := numberOf[c]; ok {
					nums = append(nums, num)
				}
			case "g":
				if c.attr("radical") == "" {
					visit(c)
				}
			}
		}
	}
	visit(g)
	return nums
}

// parseNumberLabels assigns numeral-label positions from the label
// container. Each text element names its target stroke by 1-based index in
// its character data and carries its placement in a matrix transform; the
// translation components are the label position. Labels that fail to parse
// or target an out-of-range stroke are skipped — numbering positions are
// best-effort metadata, never fatal.
func parseNumberLabels(rec *KanjiRecord, root *xmlNode, id string) {
	numbers := root.find(func(n *xmlNode) bool {
		return n.name == "g" && strings.HasPrefix(n.attr("id"), numberContainerPrefix)
	})
	if numbers == nil {
		return
	}

	numbers.walk(func(n *xmlNode) {
		if n.name != "text" {
			return
		}
		idx, err := strconv.Atoi(strings.TrimSpace(n.text))
		if err != nil || idx < 1 || idx > len(rec.Strokes) {
			return
		}
		m, err := ParseMatrix(n.attr("transform"))
		if err != nil {
			Logger().Debug("skipping number label", "id", id, "stroke", idx, "err", err)
			return
		}
		pos := m.Translation()
		rec.Strokes[idx-1].NumberPos = &pos
	})
}

// sanitizeMarkup prepares raw markup for decoding: the internal-subset
// type declaration some diagram files carry is stripped (it is decoration
// only and trips up stricter parsers), and the kvg namespace declaration
// is injected when absent so namespaced attributes resolve.
func sanitizeMarkup(markup []byte) []byte {
	markup = stripDoctype(markup)

	if !bytes.Contains(markup, []byte("xmlns:kvg")) {
		if i := bytes.Index(markup, []byte("<svg")); i >= 0 {
			if j := bytes.IndexByte(markup[i:], '>'); j >= 0 {
				at := i + j
				if markup[at-1] == '/' {
					at--
				}
				decl := []byte(` xmlns:kvg="` + kvgNamespace + `"`)
				out := make([]byte, 0, len(markup)+len(decl))
				out = append(out, markup[:at]...)
				out = append(out, decl...)
				out = append(out, markup[at:]...)
				markup = out
			}
		}
	}
	return markup
}

// stripDoctype removes a <!DOCTYPE ...> declaration, including any [...]
// internal subset, from the document prelude.
func stripDoctype(markup []byte) []byte {
	start := bytes.Index(markup, []byte("<!DOCTYPE"))
	if start < 0 {
		return markup
	}

	end := -1
	depth := 0
	for i := start; i < len(markup); i++ {
		switch markup[i] {
		case '[':
			depth++
		case ']':
			depth--
		case '>':
			if depth == 0 {
				end = i + 1
			}
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		return markup
	}

	out := make([]byte, 0, len(markup)-(end-start))
	out = append(out, markup[:start]...)
	out = append(out, markup[end:]...)
	return out
}
