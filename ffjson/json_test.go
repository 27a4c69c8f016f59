package ffjson

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ffxml "github.com/chemtk/ffxml"
)

func fixture() *ffxml.Structure {
	ct := &ffxml.AtomType{Name: "CT", Sigma: 3.4, Epsilon: 0.1094}
	hc := &ffxml.AtomType{Name: "HC", Sigma: 2.6, Epsilon: 0.0157}
	a0 := &ffxml.Atom{Type: ct, Charge: -0.18, Mass: 12.01, Index: 0}
	a1 := &ffxml.Atom{Type: hc, Charge: 0.06, Mass: 1.008, Index: 1}
	a2 := &ffxml.Atom{Type: hc, Charge: 0.06, Mass: 1.008, Index: 2}
	return &ffxml.Structure{
		Atoms: []*ffxml.Atom{a0, a1, a2},
		Bonds: []*ffxml.Bond{{Atom1: a0, Atom2: a1, Type: &ffxml.BondType{K: 340, Req: 1.09}}},
		Dihedrals: []*ffxml.Dihedral{{
			Atom1: a1, Atom2: a0, Atom3: a2, Atom4: a1, Improper: true,
			Type: &ffxml.DihedralType{PhiK: 1.1, Phase: 180, Periodicity: 2},
		}},
		Adjusts: []*ffxml.Adjust{{Atom1: a1, Atom2: a2,
			Type: &ffxml.AdjustType{Sigma: 2.6, Epsilon: 0.00785, ChgScale: 0.5}}},
	}
}

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(fixture(), &buf))
	s, err := Decode(&buf)
	require.NoError(t, err)

	require.Len(t, s.Atoms, 3)
	//atoms of the same type share one AtomType after decoding
	assert.Same(t, s.Atoms[1].Type, s.Atoms[2].Type)
	assert.Equal(t, "CT", s.Atoms[0].Type.Name)
	assert.Equal(t, 1, s.Atoms[1].Index)

	require.Len(t, s.Bonds, 1)
	assert.Same(t, s.Atoms[0], s.Bonds[0].Atom1)
	assert.Equal(t, 340.0, s.Bonds[0].Type.K)
	assert.Equal(t, 1.09, s.Bonds[0].Type.Req)

	require.Len(t, s.Dihedrals, 1)
	assert.True(t, s.Dihedrals[0].Improper)
	assert.Equal(t, 2, s.Dihedrals[0].Type.Periodicity)

	require.Len(t, s.Adjusts, 1)
	assert.Equal(t, 0.5, s.Adjusts[0].Type.ChgScale)
}

func TestDecodeUnknownType(t *testing.T) {
	in := `{"atomtypes":[{"name":"CT","sigma":3.4,"epsilon":0.1}],
		"atoms":[{"type":"XX","charge":0,"mass":12.01}]}`
	_, err := Decode(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown atom type")
}

func TestDecodeBadIndex(t *testing.T) {
	in := `{"atomtypes":[{"name":"CT","sigma":3.4,"epsilon":0.1}],
		"atoms":[{"type":"CT","charge":0,"mass":12.01}],
		"bonds":[{"atoms":[0,5],"k":340,"req":1.09}]}`
	_, err := Decode(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}
