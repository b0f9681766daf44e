package types

import "github.com/m-mizutani/goerr/v2"

// ErrNotFound is the shared sentinel wrapped by every repository
// implementation when a requested record does not exist. Callers detect
// it with errors.Is regardless of the backing store.
var ErrNotFound = goerr.New("record not found")
