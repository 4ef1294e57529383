package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Run("invalid level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Level = "loud"
		assert.Error(t, Setup(cfg))
	})

	t.Run("file output with component field", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "billing.log")
		cfg := DefaultConfig()
		cfg.Level = "debug"
		cfg.Output = path
		require.NoError(t, Setup(cfg))
		t.Cleanup(func() {
			_ = Setup(DefaultConfig())
		})

		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

		l := WithComponent("usecase.invoice")
		l.Info().Str("contract_id", "c-1").Msg("invoice upserted")

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(b), `"component":"usecase.invoice"`)
		assert.Contains(t, string(b), `"contract_id":"c-1"`)
	})
}
