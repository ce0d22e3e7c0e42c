package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte("works: []\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	got := make(chan *Dataset, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, nil, func(ds *Dataset) { got <- ds })
	}()

	// Keep writing until the watcher is registered and notices.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
loop:
	for {
		select {
		case ds := <-got:
			if len(ds.Works) == 1 {
				break loop
			}
		case <-tick.C:
			require.NoError(t, os.WriteFile(path, []byte("works:\n  - id: a\n    title: A\n"), 0o644))
		case <-deadline:
			t.Fatal("dataset was not reloaded")
		}
	}

	cancel()
	require.NoError(t, <-done)
}
