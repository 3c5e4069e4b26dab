package kzg

import "errors"

// Sentinel causes wrapped by *Error across the package. Callers match on
// Error.Kind, not on these directly, but they make failure_scenarios in
// tests and logs legible.
var (
	errInvalidFieldElementLength = errors.New("field element must be exactly 32 bytes")
	errFieldElementNotReduced    = errors.New("field element value is not less than the scalar field modulus")
	errDivisionByZero            = errors.New("division by zero")
	errZeroInBatchInverse        = errors.New("batch inverse input contains a zero element")
	errNotPowerOfTwo             = errors.New("length is not a power of two")
	errLengthExceedsMaxWidth     = errors.New("length exceeds the trusted setup's maximum width")
	errInvalidPointEncoding      = errors.New("invalid compressed point encoding")
	errPointNotOnCurve           = errors.New("point is not on the curve")
	errPointNotInSubgroup        = errors.New("point is not in the correct subgroup")
	errBlobLength                = errors.New("blob has the wrong length")
	errCellLength                = errors.New("cell has the wrong length")
	errCommitmentLength          = errors.New("commitment has the wrong length")
	errProofLength                = errors.New("proof has the wrong length")
	errMismatchedLengths          = errors.New("input slices have mismatched lengths")
	errDuplicateCellID            = errors.New("duplicate cell id")
	errCellIDOutOfRange           = errors.New("cell id out of range")
	errTooFewCellsForRecovery     = errors.New("fewer than half of the cells are present")
	errSetupNotLagrangeForm       = errors.New("trusted setup is not in Lagrange form")
	errSetupWrongPointCount       = errors.New("trusted setup has the wrong number of points")
	errMonomialSetupMissing       = errors.New("monomial-form G1 setup required for FK20 but not present")
)
