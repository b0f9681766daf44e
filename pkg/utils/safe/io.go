// Package safe wraps I/O cleanup calls whose errors cannot change the
// outcome of the surrounding operation. The error still gets logged
// through the context logger so leaks are visible.
package safe

import (
	"context"
	"io"
	"log/slog"

	"github.com/construct-hq/tenderbase/pkg/utils/logging"
)

// Close closes c unless it is nil. Intended for defer sites where the
// response or repository is already consumed.
func Close(ctx context.Context, c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logging.From(ctx).Warn("close failed", slog.Any("error", err))
	}
}

// Write writes data to w, logging a short write or transport error.
// Used after response headers are committed, when returning the error
// to the caller is no longer possible.
func Write(ctx context.Context, w io.Writer, data []byte) {
	if w == nil {
		return
	}
	if _, err := w.Write(data); err != nil {
		logging.From(ctx).Warn("write failed", slog.Any("error", err))
	}
}
