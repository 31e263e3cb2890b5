package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(path, []byte("inverted: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan string, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, []string{path}, func(p string) { changed <- p })
	}()

	want, _ := filepath.Abs(path)
	deadline := time.After(5 * time.Second)
	for {
		// The watcher may not be registered yet; keep writing until seen.
		if err := os.WriteFile(path, []byte("inverted: true\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		select {
		case got := <-changed:
			if got != want {
				t.Fatalf("changed(%q); want %q", got, want)
			}
			cancel()
			if err := <-done; err != nil {
				t.Errorf("Watch returned %v", err)
			}
			return
		case <-time.After(50 * time.Millisecond):
		case <-deadline:
			t.Fatal("no change reported")
		}
	}
}
