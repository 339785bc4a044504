package config

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_DeliversReload(t *testing.T) {
	path := writeConfig(t, "[[tabs]]\nid = \"a\"\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Config, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(cfg Config) { changes <- cfg })
	}()

	// Give the watcher time to register before the write.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("[[tabs]]\nid = \"a\"\n[[tabs]]\nid = \"b\"\n"), 0600))

	select {
	case cfg := <-changes:
		assert.Len(t, cfg.Tabs, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatch_SkipsInvalidWrite(t *testing.T) {
	path := writeConfig(t, "[[tabs]]\nid = \"a\"\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Config, 8)
	go func() {
		_ = Watch(ctx, path, func(cfg Config) { changes <- cfg })
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("{{{{"), 0600))

	// A broken write must not reach the callback. A valid one after the
	// coalescing window must.
	time.Sleep(300 * time.Millisecond)
	select {
	case <-changes:
		t.Fatal("invalid config delivered")
	default:
	}

	require.NoError(t, os.WriteFile(path, []byte("[[tabs]]\nid = \"fixed\"\n"), 0600))
	select {
	case cfg := <-changes:
		require.Len(t, cfg.Tabs, 1)
		assert.Equal(t, "fixed", cfg.Tabs[0].ID)
	case <-time.After(5 * time.Second):
		t.Fatal("recovery reload not delivered")
	}
}
