package memory

import "github.com/construct-hq/tenderbase/pkg/domain/types"

// ErrNotFound aliases the shared repository sentinel
var ErrNotFound = types.ErrNotFound
