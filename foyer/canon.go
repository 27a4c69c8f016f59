package foyer

import "slices"

//Canonical ordering of the atom-type tuples that identify bonded terms.
//Two chemically-equivalent traversals of the same physical term (a bond or
//torsion read end-to-start) must produce the same tuple, which is what the
//deduplication pass relies on. All functions reorder in place.

// canonBond sorts the two type names of a bond.
func canonBond(types []string) {
	slices.Sort(types)
}

// canonAngle sorts the two end types of an angle. The central type, in the
// middle position, is never moved.
func canonAngle(types []string) {
	if types[0] > types[2] {
		types[0], types[2] = types[2], types[0]
	}
}

// canonTorsion reverses the four type names of a proper or R-B torsion
// when the first is lexicographically greater than the last. The interior
// types are not compared.
func canonTorsion(types []string) {
	if types[0] > types[len(types)-1] {
		slices.Reverse(types)
	}
}

// centralFirst swaps the central type of an improper, listed third, into
// the first position. This happens in both emission modes.
func centralFirst(types []string) {
	types[0], types[2] = types[2], types[0]
}

// canonImproper sorts the three non-central types of an improper whose
// central type has already been moved to the front.
func canonImproper(types []string) {
	slices.Sort(types[1:])
}
