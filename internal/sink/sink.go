// Package sink writes the assembled header+row pair to its destination as
// a two-line comma-separated file.
package sink

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/skillforge/skillconv/internal/schema"
)

// OutputPath derives the destination from the input document path by
// replacing its extension with ".csv".
func OutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".csv"
}

// Write renders one header line and one value line to path. Any failure is
// sink_write_failure; nothing is written on a render failure.
func Write(path string, header, values []string, log *zap.Logger) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return schema.Wrap(schema.CodeSinkWriteFailure, "", err)
	}
	if err := w.Write(values); err != nil {
		return schema.Wrap(schema.CodeSinkWriteFailure, "", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return schema.Wrap(schema.CodeSinkWriteFailure, "", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return schema.Wrap(schema.CodeSinkWriteFailure, "", err)
	}
	log.Info("wrote row", zap.String("path", path), zap.Int("columns", len(header)))
	return nil
}
