package loader

import (
	"os"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/skillforge/skillconv/internal/schema"
)

// LoadFile reads and decodes one skill document. An unreadable path or an
// unsupported extension is source_unavailable; everything past the read is
// Load's responsibility.
func LoadFile(path string, log *zap.Logger) (*schema.Skill, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, schema.Wrap(schema.CodeSourceUnavailable, "", err)
	}
	log.Debug("read document", zap.String("path", path), zap.Int("bytes", len(raw)))

	sk, err := Load(raw, format)
	if err != nil {
		return nil, err
	}
	log.Debug("decoded record", zap.String("dump", spew.Sdump(sk)))
	log.Info("loaded skill",
		zap.String("ability", sk.AbilityName),
		zap.String("category", sk.Category.String()),
		zap.Int("reagents", len(sk.RequiredReagents)),
		zap.Int("aspects", len(sk.Aspects)))
	return sk, nil
}
