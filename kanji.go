package kanjivg

// RadicalKind classifies a group as a recognized radical under a particular
// convention. The values follow the vocabulary of the source diagrams.
type RadicalKind string

const (
	// RadicalNone marks a group that is not a radical.
	RadicalNone RadicalKind = ""

	// RadicalGeneral is the general-use radical classification.
	RadicalGeneral RadicalKind = "general"

	// RadicalTradit marks a radical specific to the traditional form.
	RadicalTradit RadicalKind = "tradit"

	// RadicalNelson is the phonetic/historical (Nelson) classification.
	// It is supplementary: never auto-selected for highlighting, only
	// honored when a caller asks for it by name.
	RadicalNelson RadicalKind = "nelson"
)

// StrokeRecord is one indivisible pen movement of the character.
// Records are immutable once parsed and owned by the KanjiRecord that
// produced them.
type StrokeRecord struct {
	// Number is the 1-based position in the canonical stroke order,
	// assigned by document order of the path elements. Contiguous.
	Number int

	// Path is the SVG path-data string describing the stroke geometry.
	Path string

	// TypeTag is the stylistic stroke-shape classifier from the diagram
	// (a short code naming the stroke shape), empty if absent.
	TypeTag string

	// NumberPos is the position of the numeral label for this stroke,
	// nil when the diagram carries no usable label for it.
	NumberPos *Point

	// GroupID is the id of the innermost group owning this stroke,
	// empty if the stroke belongs to no group.
	GroupID string

	// Radical reports whether this stroke belongs to any group that
	// declares a radical kind.
	Radical bool
}

// GroupRecord is a named collection of strokes representing a sub-component
// of the character. Groups form a hierarchy in the diagram, but only the
// flattened, id-indexed membership survives parsing; there are no live
// parent/child links.
type GroupRecord struct {
	// ID is the group's element id from the diagram.
	ID string

	// Element is the sub-character this group represents, empty if the
	// group is purely structural.
	Element string

	// Radical is the group's radical classification, RadicalNone if the
	// group does not declare one.
	Radical RadicalKind

	// Position is the group's spatial role (left, right, top, bottom,
	// tare, nyo, kamae...), empty if absent.
	Position string

	// StrokeNumbers lists, in stroke order, the strokes directly owned
	// by this group. Strokes inside a nested group that itself declares
	// a radical kind belong to that nested group and are excluded here.
	StrokeNumbers []int
}

// KanjiRecord is the normalized model of one stroke-order diagram.
type KanjiRecord struct {
	// Character is the glyph this diagram describes.
	Character string

	// ID is the canonical identifier the record was parsed under.
	ID string

	// Strokes holds every stroke in canonical order. Stroke numbers are
	// exactly 1..len(Strokes).
	Strokes []StrokeRecord

	// Groups holds the flattened group records, document order.
	Groups []GroupRecord

	// Components lists every distinct non-empty group element, in the
	// order first seen.
	Components []string

	// RadicalSummary is the first group declaring a radical kind, for
	// simple display. Nil when the diagram marks no radical.
	RadicalSummary *GroupRecord
}

// StrokeCount returns the number of strokes in the character.
func (k *KanjiRecord) StrokeCount() int { return len(k.Strokes) }

// Group looks up a group record by id. Returns nil if no group has that id.
func (k *KanjiRecord) Group(id string) *GroupRecord {
	for i := range k.Groups {
		if k.Groups[i].ID == id {
			return &k.Groups[i]
		}
	}
	return nil
}

// RadicalStrokes returns the numbers of all strokes marked as radical
// strokes, in stroke order.
func (k *KanjiRecord) RadicalStrokes() []int {
	var nums []int
	for _, s := range k.Strokes {
		if s.Radical {
			nums = append(nums, s.Number)
		}
	}
	return nums
}
