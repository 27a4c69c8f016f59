/*
 * terms.go, part of ffxml.
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

//The bonded terms of a structure. Each term references its atoms in
//chemical order plus a term type holding the assigned parameters.
//A nil term type marks an unparameterized term.

// BondType holds the parameters of a harmonic bond.
type BondType struct {
	K   float64 //kcal/mol/A^2
	Req float64 //equilibrium distance, A
}

// Bond is a harmonic bond between two atoms.
type Bond struct {
	Atom1, Atom2 *Atom
	Type         *BondType
}

// TypeNames returns the atom-type names of the bond, in bond order.
func (B *Bond) TypeNames() []string {
	return []string{B.Atom1.TypeName(), B.Atom2.TypeName()}
}

// AngleType holds the parameters of a harmonic angle.
type AngleType struct {
	K      float64 //kcal/mol/rad^2
	ThetEq float64 //equilibrium angle, degrees
}

// Angle is a harmonic angle. Atom2 is the central atom.
type Angle struct {
	Atom1, Atom2, Atom3 *Atom
	Type                *AngleType
}

// TypeNames returns the atom-type names of the angle, end-center-end.
func (A *Angle) TypeNames() []string {
	return []string{A.Atom1.TypeName(), A.Atom2.TypeName(), A.Atom3.TypeName()}
}

// DihedralType holds the parameters of one periodic torsion term.
type DihedralType struct {
	PhiK        float64 //kcal/mol
	Phase       float64 //degrees
	Periodicity int
}

// Dihedral is a periodic torsion over four atoms. For impropers the
// atom order is chemically meaningful: Atom3 is the central atom.
type Dihedral struct {
	Atom1, Atom2, Atom3, Atom4 *Atom
	Improper                   bool
	Type                       *DihedralType
}

// TypeNames returns the atom-type names of the dihedral, in listed order.
func (D *Dihedral) TypeNames() []string {
	return []string{D.Atom1.TypeName(), D.Atom2.TypeName(), D.Atom3.TypeName(), D.Atom4.TypeName()}
}

// RBTorsionType holds the six Ryckaert-Bellemans coefficients.
type RBTorsionType struct {
	C [6]float64 //kcal/mol each
}

// RBTorsion is a Ryckaert-Bellemans torsion over four atoms.
type RBTorsion struct {
	Atom1, Atom2, Atom3, Atom4 *Atom
	Type                       *RBTorsionType
}

// TypeNames returns the atom-type names of the torsion, in listed order.
func (R *RBTorsion) TypeNames() []string {
	return []string{R.Atom1.TypeName(), R.Atom2.TypeName(), R.Atom3.TypeName(), R.Atom4.TypeName()}
}

// AdjustType holds the pairwise parameters of one 1-4 adjustment. They
// override the combining-rule values for the two atoms involved.
type AdjustType struct {
	Sigma    float64 //A
	Epsilon  float64 //kcal/mol
	ChgScale float64 //scaling of the 1-4 electrostatic interaction
}

// Adjust is a 1-4 nonbonded adjustment pair, i.e. a special-cased
// interaction between two atoms exactly three bonds apart.
type Adjust struct {
	Atom1, Atom2 *Atom
	Type         *AdjustType
}
