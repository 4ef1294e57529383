package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"lesson_billing/internal/app"
	"lesson_billing/internal/config"
	"lesson_billing/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("SMS_DRIVER", "disabled")
	t.Setenv("PAYMENT_LINK_MOCK", "true")
	t.Setenv("LOG_OUTPUT", "stderr")
	t.Setenv("LOG_LEVEL", "error")
}

func TestRootCmd(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"run", "sweep"}, names)

	run, _, err := root.Find([]string{"run"})
	require.NoError(t, err)
	assert.NotNil(t, run.Flags().Lookup("schedule"))
}

func TestSweepCmd(t *testing.T) {
	memoryEnv(t)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"sweep"})

	require.NoError(t, root.ExecuteContext(context.Background()))

	var report usecase.SweepReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, 0, report.Contracts)
	assert.Equal(t, 0, report.Failed)
}

func TestSweepCmd_InvalidConfig(t *testing.T) {
	memoryEnv(t)
	t.Setenv("STORAGE_DRIVER", "postgres")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"sweep"})

	assert.Error(t, root.ExecuteContext(context.Background()))
}

func TestRunScheduled(t *testing.T) {
	memoryEnv(t)
	cfg, err := config.Load()
	require.NoError(t, err)
	a, err := app.New(context.Background(), cfg)
	require.NoError(t, err)

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- runScheduled(ctx, a, "@every 1h") }()

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("runScheduled did not return after cancel")
		}
	})

	t.Run("rejects a bad schedule", func(t *testing.T) {
		err := runScheduled(context.Background(), a, "not a schedule")
		assert.Error(t, err)
	})
}
