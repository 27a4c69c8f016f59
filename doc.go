/*
 * doc.go, part of ffxml.
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

/*
Package ffxml holds the in-memory model for a fully parameterized molecular
structure: atoms with their assigned atom types, bonded terms (bonds, angles,
proper and improper dihedrals, Ryckaert-Bellemans torsions) with their force
field parameters, and the 1-4 pairwise adjustments that override the standard
nonbonded combining rule.

The model is the input contract for the subpackages that emit force-field
definition documents from it (see the foyer subpackage). All physical values
are kept in the library's internal units: kcal/mol for energies, Angstroms for
distances and degrees for angles. Conversion factors to other unit systems are
provided as constants.

Nothing in this package reads or writes files; the ffjson subpackage can
serialize a Structure, and the foyer subpackage produces force-field XML
documents from one.
*/
package ffxml
