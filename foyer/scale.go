package foyer

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats/scalar"

	ffxml "github.com/chemtk/ffxml"
)

//The document format stores one global 1-4 LJ scale and one global 1-4
//coulomb scale, while the structure only carries per-pair adjustments, so
//the global constants have to be recovered from the adjustment list.
//Adjustments that disagree are a hard error: the physical model breaks if
//pairs use different scales.

const (
	//tolerance for comparing a stored 1-4 sigma against its
	//Lorentz-Berthelot expectation
	sigmaAbsTol = 1e-8
	sigmaRelTol = 1e-5
	//decimal places at which two inferred LJ scales count as the same
	ljScaleDecimals = 8
)

// inferCoulomb14 returns the electrostatic 1-4 scaling factor shared by
// all adjustments of the structure.
func inferCoulomb14(s *ffxml.Structure) (float64, error) {
	distinct := make([]float64, 0, 1)
	for _, adj := range s.Adjusts {
		if !slices.Contains(distinct, adj.Type.ChgScale) {
			distinct = append(distinct, adj.Type.ChgScale)
		}
	}
	if len(distinct) != 1 {
		return 0, fmt.Errorf("%w: found %d distinct values; mixed 1-4 coulomb scaling is not supported", ErrCoulombScale, len(distinct))
	}
	return s.Adjusts[0].Type.ChgScale, nil
}

// inferLJ14 returns the Lennard-Jones 1-4 scaling factor shared by all
// adjustments of the structure, as the ratio between each adjustment's
// epsilon and the Lorentz-Berthelot combination of its two atom types.
// The stored sigmas are expected to match the combination rule unscaled.
func inferLJ14(s *ffxml.Structure) (float64, error) {
	ratios := make([]float64, 0, len(s.Adjusts))
	for _, adj := range s.Adjusts {
		t1 := adj.Atom1.Type
		t2 := adj.Atom2.Type
		expSigma := (t1.Sigma + t2.Sigma) * 0.5
		expEpsilon := math.Sqrt(t1.Epsilon * t2.Epsilon)
		if !scalar.EqualWithinAbsOrRel(adj.Type.Sigma, expSigma, sigmaAbsTol, sigmaRelTol) {
			return 0, fmt.Errorf("%w in pair (%d,%d): expected %v, found %v",
				ErrSigmaMismatch, adj.Atom1.Index, adj.Atom2.Index, expSigma, adj.Type.Sigma)
		}
		ratios = append(ratios, adj.Type.Epsilon/expEpsilon)
	}
	distinct := make([]float64, 0, 1)
	for _, r := range ratios {
		rr := round(r, ljScaleDecimals)
		if !slices.Contains(distinct, rr) {
			distinct = append(distinct, rr)
		}
	}
	if len(distinct) != 1 {
		slices.Sort(distinct)
		return 0, fmt.Errorf("%w: mixed 1-4 LJ scaling is not supported. Found these factors: %v", ErrLJScale, distinct)
	}
	return ratios[0], nil
}
