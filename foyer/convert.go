package foyer

import (
	"math"
	"strconv"

	ffxml "github.com/chemtk/ffxml"
)

//Every numeric attribute written to the document goes through exactly one
//of the functions below: a fixed unit conversion followed by rounding to a
//fixed number of decimal places per field. The input units are kcal/mol, A
//and degrees; the document wants kJ/mol, nm and radians. Fixed precision
//keeps the output deterministic and diff-friendly.

// round returns x rounded to n decimal places, half away from zero.
func round(x float64, n int) float64 {
	p := math.Pow(10, float64(n))
	return math.Round(x*p) / p
}

// ftoa formats x in the shortest decimal form that round-trips.
func ftoa(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func chargeAttr(q float64) string {
	return ftoa(round(q, 4))
}

func sigmaAttr(sigma float64) string {
	return ftoa(round(sigma, 4))
}

func epsilonAttr(eps float64) string {
	return ftoa(round(eps*ffxml.Kcal2KJ, 6))
}

func lengthAttr(req float64) string {
	return ftoa(round(req*ffxml.A2Nm, 4))
}

//the bond force constant also changes from per-A^2 to per-nm^2 (x100) and
//picks up the factor 2 of the harmonic convention.
func bondKAttr(k float64) string {
	return ftoa(round(k*ffxml.Kcal2KJ*200, 1))
}

func angleAttr(theta float64) string {
	return ftoa(round(theta*ffxml.Deg2Rad, 10))
}

func angleKAttr(k float64) string {
	return ftoa(round(k*ffxml.Kcal2KJ*2, 3))
}

func phaseAttr(phase float64) string {
	return ftoa(round(phase*ffxml.Deg2Rad, 8))
}

func torsionKAttr(k float64) string {
	return ftoa(round(k*ffxml.Kcal2KJ, 3))
}

func rbAttr(c float64) string {
	return ftoa(round(c*ffxml.Kcal2KJ, 4))
}
