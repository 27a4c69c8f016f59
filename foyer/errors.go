package foyer

import "errors"

//All failures are fatal to the current emission: no partial document is
//ever returned. The sentinels below mark the inconsistency class; the
//errors actually returned wrap them with the offending pair and values.

var (
	// ErrUnparametrized is returned when the structure has no bonds, or
	// its first bond carries no assigned parameters.
	ErrUnparametrized = errors.New("cannot write a force field from an unparametrized structure")

	// ErrCoulombScale is returned when the 1-4 adjustments disagree on
	// the electrostatic scaling factor.
	ErrCoulombScale = errors.New("structure has inconsistent 1-4 coulomb scaling factors")

	// ErrSigmaMismatch is returned when a 1-4 adjustment stores a sigma
	// that does not match the Lorentz-Berthelot combination of its two
	// atom types.
	ErrSigmaMismatch = errors.New("unexpected 1-4 sigma value")

	// ErrLJScale is returned when the 1-4 adjustments disagree on the
	// Lennard-Jones scaling factor.
	ErrLJScale = errors.New("structure has inconsistent 1-4 LJ scaling factors")
)
