package sink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skillforge/skillconv/internal/schema"
)

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "skill.csv", OutputPath("skill.json"))
	assert.Equal(t, "data/fire_bolt.csv", OutputPath("data/fire_bolt.yaml"))
	assert.Equal(t, "skill.csv", OutputPath("skill.csv"))
	assert.Equal(t, "skill.csv", OutputPath("skill"))
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	err := Write(path, []string{"abilityName", "aspects"}, []string{"Mend", "heal|single-target"}, zap.NewNop())
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abilityName,aspects\nMend,heal|single-target\n", string(raw))
}

// Values containing the CSV separator must come back quoted.
func TestWriteQuotesSeparators(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	err := Write(path, []string{"narrative"}, []string{"one, two"}, zap.NewNop())
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "narrative\n\"one, two\"\n", string(raw))
}

func TestWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")
	err := Write(path, []string{"a"}, []string{"1"}, zap.NewNop())
	require.Error(t, err)
	assert.Equal(t, schema.CodeSinkWriteFailure, schema.CodeOf(err))
}
