/*
Package foyer emits Foyer-style force-field XML documents from a
parameterized ffxml.Structure.

The document declares the atom types, nonbonded parameters and bonded-term
parameters (harmonic bonds, harmonic angles, periodic proper/improper
torsions and Ryckaert-Bellemans torsions) of the structure in the unit
system used by that format: kJ/mol, nm and radians. Two emission modes are
supported. In unique mode (the default) each section holds one entry per
distinct combination of atom types, with physically-equivalent traversals of
the same term (a bond read end-to-start, say) collapsed to a single
canonical entry. In per-instance mode one entry is written for every
physical bond, angle and torsion of the structure, tagged with the indices
of the atoms involved; that form is mainly useful to store the full topology
of small test molecules.

The two global 1-4 scaling factors of the format are not stored by the
structure, which only carries per-pair adjustments, so they are inferred
from the adjustment list. A structure whose adjustments disagree on either
factor cannot be represented and makes the emission fail.
*/
package foyer
