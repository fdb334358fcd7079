package mock

import (
	"context"

	"github.com/fwojciec/codewiki"
)

var _ codewiki.ExportWriter = (*ExportWriter)(nil)

// ExportWriter is a mock implementation of codewiki.ExportWriter.
type ExportWriter struct {
	WriteExportFn func(ctx context.Context, export *codewiki.Export) error
}

func (w *ExportWriter) WriteExport(ctx context.Context, export *codewiki.Export) error {
	return w.WriteExportFn(ctx, export)
}
