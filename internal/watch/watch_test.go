package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFiles_NotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "settings.yaml")
	other := filepath.Join(dir, "other.txt")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 10)
	ready := make(chan error, 1)
	go func() {
		ready <- Files(ctx, Config{Paths: []string{target}, Debounce: 10 * time.Millisecond}, func() {
			changed <- struct{}{}
		})
	}()

	// give the watcher time to register
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	select {
	case <-changed:
		t.Fatal("writes to unrelated files must not notify")
	case <-time.After(150 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(target, []byte("app_theme: DARK\n"), 0o644))
	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a change notification")
	}

	cancel()
	select {
	case err := <-ready:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestFiles_MissingDirectory(t *testing.T) {
	err := Files(context.Background(), Config{Paths: []string{"/definitely/not/here/file"}}, func() {})
	require.Error(t, err)
}
