package repository

import "errors"

// ErrNotFound is returned by point reads when no record matches.
// Callers must not fold it into authorization failures for anyone but the
// principal: a missing target account is handled by upsert semantics instead.
var ErrNotFound = errors.New("not found")
