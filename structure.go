/*
 * structure.go, part of ffxml.
 *
 * Copyright 2025 The ffxml developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package ffxml

// AtomType holds the per-type nonbonded parameters. Several atoms normally
// share one AtomType, so the terms and the emitters compare types by Name.
type AtomType struct {
	Name    string
	Sigma   float64 //A
	Epsilon float64 //kcal/mol
}

// Copy returns a copy of the AtomType.
func (A *AtomType) Copy() *AtomType {
	if A == nil {
		panic("attempted to copy a nil atom type")
	}
	n := new(AtomType)
	*n = *A
	return n
}

// Atom is one atom of a parameterized structure. Index is the 0-based
// position of the atom in its Structure, which per-instance force-field
// dumps use to tag entries.
type Atom struct {
	Type   *AtomType
	Charge float64 //electron charges
	Mass   float64 //Da
	Index  int
}

// TypeName returns the name of the atom's type, or the empty string
// if no type has been assigned.
func (A *Atom) TypeName() string {
	if A.Type == nil {
		return ""
	}
	return A.Type.Name
}

// Structure gathers the atoms, bonded terms and 1-4 adjustments of one
// parameterized molecular system. It is read-only input for the emitters:
// none of them modifies it.
type Structure struct {
	Atoms      []*Atom
	Bonds      []*Bond
	Angles     []*Angle
	Dihedrals  []*Dihedral
	RBTorsions []*RBTorsion
	Adjusts    []*Adjust
}

// Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	return len(S.Atoms)
}

// Parametrized reports whether the structure carries assigned bond
// parameters. As in other topology codes, a structure with at least one
// bond whose term type is set is taken to be parameterized.
func (S *Structure) Parametrized() bool {
	return len(S.Bonds) > 0 && S.Bonds[0].Type != nil
}
