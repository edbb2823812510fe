package kanjivg

// autoDetectOrder is the priority for picking a radical kind when the
// caller supplies no allow-list. Nelson radicals are deliberately absent:
// the phonetic/historical marking is supplementary and noisy, so it is
// only honored when asked for by name.
var autoDetectOrder = []RadicalKind{RadicalGeneral, RadicalTradit}

// SelectRadicals returns the groups eligible for radical highlighting.
//
// With a non-nil allow-list, eligibility is simply membership in the list.
// With a nil allow-list, the kind is auto-detected: the first of general,
// tradit that has at least one matching group wins, and only groups of
// that kind are selected. Nelson groups are never auto-selected.
func SelectRadicals(groups []GroupRecord, allow []RadicalKind) []GroupRecord {
	var eligible []GroupRecord
	for _, g := range groups {
		if g.Radical == RadicalNone {
			continue
		}
		if radicalAllowed(g.Radical, groups, allow) {
			eligible = append(eligible, g)
		}
	}
	return eligible
}

// RadicalStrokeNumbers returns the set of stroke numbers covered by the
// eligible radical groups, keyed by stroke number.
func RadicalStrokeNumbers(groups []GroupRecord, allow []RadicalKind) map[int]bool {
	covered := make(map[int]bool)
	for _, g := range SelectRadicals(groups, allow) {
		for _, num := range g.StrokeNumbers {
			covered[num] = true
		}
	}
	return covered
}

func radicalAllowed(kind RadicalKind, groups []GroupRecord, allow []RadicalKind) bool {
	if allow != nil {
		for _, k := range allow {
			if k == kind {
				return true
			}
		}
		return false
	}
	return kind == autoDetectKind(groups)
}

// autoDetectKind picks the radical kind to highlight when no allow-list is
// given: the first kind in priority order with at least one group.
func autoDetectKind(groups []GroupRecord) RadicalKind {
	for _, kind := range autoDetectOrder {
		for _, g := range groups {
			if g.Radical == kind {
				return kind
			}
		}
	}
	return RadicalNone
}
