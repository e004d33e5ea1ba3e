package ioneq

import "errors"

// Domain errors for ionization balance operations.
var (
	// ErrBadKey indicates a string lookup key that does not match the
	// "<element> <stage>" or "<element> <charge>+" forms.
	ErrBadKey = errors.New("ioneq: malformed ion lookup key")

	// ErrStageRange indicates an index outside 0..Z.
	ErrStageRange = errors.New("ioneq: ion stage index out of range")

	// ErrNoProviders indicates an empty rate provider chain.
	ErrNoProviders = errors.New("ioneq: no rate providers")

	// ErrShapeMismatch indicates a rate matrix whose dimensions do not
	// match the element's stage count or temperature grid.
	ErrShapeMismatch = errors.New("ioneq: rate matrix shape mismatch")

	// ErrNoConvergence indicates the decomposition of a temperature slice
	// failed.
	ErrNoConvergence = errors.New("ioneq: singular value decomposition did not converge")
)
