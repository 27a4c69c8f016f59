package foyer

import (
	"slices"
	"strings"

	"github.com/chemtk/ffxml/xtree"
)

//sort keys per section: the attributes forming the canonical type tuple,
//in tuple order.
var sectionKeys = map[string][]string{
	"AtomTypes":            {"name"},
	"NonbondedForce":       {"type"},
	"HarmonicBondForce":    {"type1", "type2"},
	"HarmonicAngleForce":   {"type1", "type2", "type3"},
	"PeriodicTorsionForce": {"type1", "type2", "type3", "type4"},
	"RBTorsionForce":       {"type1", "type2", "type3", "type4"},
}

// dedup sorts every section of the document by its canonical type tuple
// and drops entries structurally identical to the previously kept one. In
// per-instance mode only the AtomTypes section is processed: atom types
// are keyed by type identity regardless of mode, so their duplicates are
// always redundant. Two entries with an equal tuple but different
// parameters are both kept; they are key-colliding, not duplicates.
func dedup(root *xtree.Element, unique bool) {
	for _, section := range root.Children {
		if !unique && section.Tag != "AtomTypes" {
			continue
		}
		keys := sectionKeys[section.Tag]
		slices.SortStableFunc(section.Children, func(a, b *xtree.Element) int {
			for _, k := range keys {
				if c := strings.Compare(a.Get(k), b.Get(k)); c != 0 {
					return c
				}
			}
			return 0
		})
		//the "previously kept" reference is scoped to the section, so an
		//entry can never be dropped against one from another section.
		var prev *xtree.Element
		kept := section.Children[:0]
		for _, e := range section.Children {
			if e.Equal(prev) {
				continue
			}
			kept = append(kept, e)
			prev = e
		}
		section.Children = kept
	}
}
