package foyer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ffxml "github.com/chemtk/ffxml"
)

//builds one 1-4 adjustment between fresh atoms of the two given types,
//with the Lorentz-Berthelot sigma and the epsilon scaled by ratio.
func adjust14(t1, t2 *ffxml.AtomType, ratio, chgscale float64) *ffxml.Adjust {
	return &ffxml.Adjust{
		Atom1: &ffxml.Atom{Type: t1, Index: 0},
		Atom2: &ffxml.Atom{Type: t2, Index: 1},
		Type: &ffxml.AdjustType{
			Sigma:    (t1.Sigma + t2.Sigma) * 0.5,
			Epsilon:  ratio * math.Sqrt(t1.Epsilon*t2.Epsilon),
			ChgScale: chgscale,
		},
	}
}

func TestScaleInference(t *testing.T) {
	ct := &ffxml.AtomType{Name: "CT", Sigma: 3.4, Epsilon: 0.1094}
	hc := &ffxml.AtomType{Name: "HC", Sigma: 2.6, Epsilon: 0.0157}
	s := &ffxml.Structure{Adjusts: []*ffxml.Adjust{
		adjust14(ct, hc, 0.5, 0.8333),
		adjust14(ct, ct, 0.5, 0.8333),
		adjust14(hc, hc, 0.5, 0.8333),
	}}
	coul, err := inferCoulomb14(s)
	require.NoError(t, err)
	assert.Equal(t, 0.8333, coul)
	lj, err := inferLJ14(s)
	require.NoError(t, err)
	assert.Equal(t, 0.5, lj)
}

func TestInconsistentCoulombScale(t *testing.T) {
	ct := &ffxml.AtomType{Name: "CT", Sigma: 3.4, Epsilon: 0.1094}
	s := &ffxml.Structure{Adjusts: []*ffxml.Adjust{
		adjust14(ct, ct, 0.5, 0.5),
		adjust14(ct, ct, 0.5, 0.5),
		adjust14(ct, ct, 0.5, 0.83),
	}}
	_, err := inferCoulomb14(s)
	assert.ErrorIs(t, err, ErrCoulombScale)
}

func TestSigmaMismatch(t *testing.T) {
	ct := &ffxml.AtomType{Name: "CT", Sigma: 3.4, Epsilon: 0.1094}
	hc := &ffxml.AtomType{Name: "HC", Sigma: 2.6, Epsilon: 0.0157}
	adj := adjust14(ct, hc, 0.5, 0.5)
	adj.Type.Sigma += 0.1
	s := &ffxml.Structure{Adjusts: []*ffxml.Adjust{adj}}
	_, err := inferLJ14(s)
	require.ErrorIs(t, err, ErrSigmaMismatch)
	assert.Contains(t, err.Error(), "expected 3")
}

func TestSigmaWithinTolerance(t *testing.T) {
	ct := &ffxml.AtomType{Name: "CT", Sigma: 3.4, Epsilon: 0.1094}
	adj := adjust14(ct, ct, 1.0, 0.5)
	adj.Type.Sigma *= 1 + 1e-7 //well inside the relative tolerance
	s := &ffxml.Structure{Adjusts: []*ffxml.Adjust{adj}}
	_, err := inferLJ14(s)
	assert.NoError(t, err)
}

func TestInconsistentLJScale(t *testing.T) {
	ct := &ffxml.AtomType{Name: "CT", Sigma: 3.4, Epsilon: 0.1094}
	hc := &ffxml.AtomType{Name: "HC", Sigma: 2.6, Epsilon: 0.0157}
	s := &ffxml.Structure{Adjusts: []*ffxml.Adjust{
		adjust14(ct, hc, 0.5, 0.5),
		adjust14(ct, hc, 0.75, 0.5),
	}}
	_, err := inferLJ14(s)
	require.ErrorIs(t, err, ErrLJScale)
	//the error reports the full set of distinct factors found
	assert.Contains(t, err.Error(), "0.5")
	assert.Contains(t, err.Error(), "0.75")
}

func TestLJScaleRatioRounding(t *testing.T) {
	//ratios that agree to 8 decimals count as one scale; the unrounded
	//first ratio is returned
	ct := &ffxml.AtomType{Name: "CT", Sigma: 3.4, Epsilon: 0.1094}
	s := &ffxml.Structure{Adjusts: []*ffxml.Adjust{
		adjust14(ct, ct, 0.5, 0.5),
		adjust14(ct, ct, 0.5+1e-12, 0.5),
	}}
	lj, err := inferLJ14(s)
	require.NoError(t, err)
	assert.Equal(t, 0.5, lj)
}

func TestNoAdjustments(t *testing.T) {
	//without adjustments neither scale can be inferred
	s := new(ffxml.Structure)
	_, err := inferCoulomb14(s)
	assert.ErrorIs(t, err, ErrCoulombScale)
	_, err = inferLJ14(s)
	assert.ErrorIs(t, err, ErrLJScale)
}
