package ration

import "errors"

// ErrInvalidInput covers every rejected calculation input: unknown status id,
// non-positive body weight, negative milk yield, negative override price.
// It is raised before any allocation work begins; no partial result is
// returned alongside it.
var ErrInvalidInput = errors.New("invalid input")
