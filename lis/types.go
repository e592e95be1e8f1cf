package lis

import "errors"

// ErrNonFiniteInput indicates that a floating-point input holds NaN or ±Inf,
// for which "strictly increasing" is not a total order.
var ErrNonFiniteInput = errors.New("lis: non-finite input value")
