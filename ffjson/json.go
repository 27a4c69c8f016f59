/*
 * json.go, part of ffxml.
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

//Package ffjson serializes parameterized structures to JSON and back, so
//small test molecules can be stored and fed to the converter. Atom types
//are written once, in a table, and referenced by name; bonded terms and
//adjustments reference atoms by index.
package ffjson

import (
	"encoding/json"
	"fmt"
	"io"

	ffxml "github.com/chemtk/ffxml"
)

//Serialization-shaped mirrors of the ffxml model.

type atomTypeJSON struct {
	Name    string  `json:"name"`
	Sigma   float64 `json:"sigma"`
	Epsilon float64 `json:"epsilon"`
}

type atomJSON struct {
	Type   string  `json:"type"`
	Charge float64 `json:"charge"`
	Mass   float64 `json:"mass"`
}

type bondJSON struct {
	Atoms [2]int  `json:"atoms"`
	K     float64 `json:"k"`
	Req   float64 `json:"req"`
}

type angleJSON struct {
	Atoms  [3]int  `json:"atoms"`
	K      float64 `json:"k"`
	ThetEq float64 `json:"theteq"`
}

type dihedralJSON struct {
	Atoms       [4]int  `json:"atoms"`
	Improper    bool    `json:"improper,omitempty"`
	PhiK        float64 `json:"phik"`
	Phase       float64 `json:"phase"`
	Periodicity int     `json:"periodicity"`
}

type rbTorsionJSON struct {
	Atoms [4]int     `json:"atoms"`
	C     [6]float64 `json:"c"`
}

type adjustJSON struct {
	Atoms    [2]int  `json:"atoms"`
	Sigma    float64 `json:"sigma"`
	Epsilon  float64 `json:"epsilon"`
	ChgScale float64 `json:"chgscale"`
}

type structureJSON struct {
	AtomTypes  []atomTypeJSON  `json:"atomtypes"`
	Atoms      []atomJSON      `json:"atoms"`
	Bonds      []bondJSON      `json:"bonds,omitempty"`
	Angles     []angleJSON     `json:"angles,omitempty"`
	Dihedrals  []dihedralJSON  `json:"dihedrals,omitempty"`
	RBTorsions []rbTorsionJSON `json:"rbtorsions,omitempty"`
	Adjusts    []adjustJSON    `json:"adjusts,omitempty"`
}

// Encode writes s to w as JSON. Atom types are collected from the atoms in
// first-seen order; terms reference atoms through their Index field.
func Encode(s *ffxml.Structure, w io.Writer) error {
	sj := new(structureJSON)
	seen := make(map[string]bool)
	for _, at := range s.Atoms {
		t := at.Type
		if t == nil {
			return fmt.Errorf("atom %d has no assigned type", at.Index)
		}
		if !seen[t.Name] {
			seen[t.Name] = true
			sj.AtomTypes = append(sj.AtomTypes, atomTypeJSON{Name: t.Name, Sigma: t.Sigma, Epsilon: t.Epsilon})
		}
		sj.Atoms = append(sj.Atoms, atomJSON{Type: t.Name, Charge: at.Charge, Mass: at.Mass})
	}
	for _, b := range s.Bonds {
		sj.Bonds = append(sj.Bonds, bondJSON{
			Atoms: [2]int{b.Atom1.Index, b.Atom2.Index},
			K:     b.Type.K, Req: b.Type.Req,
		})
	}
	for _, a := range s.Angles {
		sj.Angles = append(sj.Angles, angleJSON{
			Atoms: [3]int{a.Atom1.Index, a.Atom2.Index, a.Atom3.Index},
			K:     a.Type.K, ThetEq: a.Type.ThetEq,
		})
	}
	for _, d := range s.Dihedrals {
		sj.Dihedrals = append(sj.Dihedrals, dihedralJSON{
			Atoms:    [4]int{d.Atom1.Index, d.Atom2.Index, d.Atom3.Index, d.Atom4.Index},
			Improper: d.Improper,
			PhiK:     d.Type.PhiK, Phase: d.Type.Phase, Periodicity: d.Type.Periodicity,
		})
	}
	for _, rb := range s.RBTorsions {
		sj.RBTorsions = append(sj.RBTorsions, rbTorsionJSON{
			Atoms: [4]int{rb.Atom1.Index, rb.Atom2.Index, rb.Atom3.Index, rb.Atom4.Index},
			C:     rb.Type.C,
		})
	}
	for _, adj := range s.Adjusts {
		sj.Adjusts = append(sj.Adjusts, adjustJSON{
			Atoms: [2]int{adj.Atom1.Index, adj.Atom2.Index},
			Sigma: adj.Type.Sigma, Epsilon: adj.Type.Epsilon, ChgScale: adj.Type.ChgScale,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sj)
}

// Decode reads a JSON-encoded structure from r, rebuilding the shared
// atom-type pointers and the atom references of every term. Atom indices
// are assigned from position.
func Decode(r io.Reader) (*ffxml.Structure, error) {
	sj := new(structureJSON)
	if err := json.NewDecoder(r).Decode(sj); err != nil {
		return nil, err
	}
	types := make(map[string]*ffxml.AtomType, len(sj.AtomTypes))
	for _, tj := range sj.AtomTypes {
		if _, dup := types[tj.Name]; dup {
			return nil, fmt.Errorf("duplicate atom type %q", tj.Name)
		}
		types[tj.Name] = &ffxml.AtomType{Name: tj.Name, Sigma: tj.Sigma, Epsilon: tj.Epsilon}
	}
	s := new(ffxml.Structure)
	for i, aj := range sj.Atoms {
		t, ok := types[aj.Type]
		if !ok {
			return nil, fmt.Errorf("atom %d references unknown atom type %q", i, aj.Type)
		}
		s.Atoms = append(s.Atoms, &ffxml.Atom{Type: t, Charge: aj.Charge, Mass: aj.Mass, Index: i})
	}
	atom := func(i int) (*ffxml.Atom, error) {
		if i < 0 || i >= len(s.Atoms) {
			return nil, fmt.Errorf("atom index %d out of range", i)
		}
		return s.Atoms[i], nil
	}
	for _, bj := range sj.Bonds {
		a1, err := atom(bj.Atoms[0])
		if err != nil {
			return nil, fmt.Errorf("bond: %w", err)
		}
		a2, err := atom(bj.Atoms[1])
		if err != nil {
			return nil, fmt.Errorf("bond: %w", err)
		}
		s.Bonds = append(s.Bonds, &ffxml.Bond{Atom1: a1, Atom2: a2, Type: &ffxml.BondType{K: bj.K, Req: bj.Req}})
	}
	for _, aj := range sj.Angles {
		ats, err := atoms(atom, aj.Atoms[:])
		if err != nil {
			return nil, fmt.Errorf("angle: %w", err)
		}
		s.Angles = append(s.Angles, &ffxml.Angle{Atom1: ats[0], Atom2: ats[1], Atom3: ats[2],
			Type: &ffxml.AngleType{K: aj.K, ThetEq: aj.ThetEq}})
	}
	for _, dj := range sj.Dihedrals {
		ats, err := atoms(atom, dj.Atoms[:])
		if err != nil {
			return nil, fmt.Errorf("dihedral: %w", err)
		}
		s.Dihedrals = append(s.Dihedrals, &ffxml.Dihedral{Atom1: ats[0], Atom2: ats[1], Atom3: ats[2], Atom4: ats[3],
			Improper: dj.Improper,
			Type:     &ffxml.DihedralType{PhiK: dj.PhiK, Phase: dj.Phase, Periodicity: dj.Periodicity}})
	}
	for _, rj := range sj.RBTorsions {
		ats, err := atoms(atom, rj.Atoms[:])
		if err != nil {
			return nil, fmt.Errorf("rbtorsion: %w", err)
		}
		s.RBTorsions = append(s.RBTorsions, &ffxml.RBTorsion{Atom1: ats[0], Atom2: ats[1], Atom3: ats[2], Atom4: ats[3],
			Type: &ffxml.RBTorsionType{C: rj.C}})
	}
	for _, aj := range sj.Adjusts {
		a1, err := atom(aj.Atoms[0])
		if err != nil {
			return nil, fmt.Errorf("adjust: %w", err)
		}
		a2, err := atom(aj.Atoms[1])
		if err != nil {
			return nil, fmt.Errorf("adjust: %w", err)
		}
		s.Adjusts = append(s.Adjusts, &ffxml.Adjust{Atom1: a1, Atom2: a2,
			Type: &ffxml.AdjustType{Sigma: aj.Sigma, Epsilon: aj.Epsilon, ChgScale: aj.ChgScale}})
	}
	return s, nil
}

func atoms(atom func(int) (*ffxml.Atom, error), idx []int) ([]*ffxml.Atom, error) {
	r := make([]*ffxml.Atom, 0, len(idx))
	for _, i := range idx {
		a, err := atom(i)
		if err != nil {
			return nil, err
		}
		r = append(r, a)
	}
	return r, nil
}
