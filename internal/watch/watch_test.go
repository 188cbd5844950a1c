package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func start(t *testing.T, opts Options, rebuild func() error) (stop func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, opts, rebuild) }()
	// give the watcher time to register
	time.Sleep(100 * time.Millisecond)
	return func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("watcher did not stop")
		}
	}
}

func TestRunRebuildsOnlyForInputs(t *testing.T) {
	base := t.TempDir()
	catalog := filepath.Join(base, "characters.json")
	icons := filepath.Join(base, "icons")
	require.NoError(t, os.WriteFile(catalog, []byte("{}"), 0o644))
	require.NoError(t, os.Mkdir(icons, 0o755))

	rebuilt := make(chan struct{}, 10)
	stop := start(t, Options{
		Inputs:   []string{catalog, icons, filepath.Join(base, "missing")},
		Debounce: 20 * time.Millisecond,
		Logger:   zaptest.NewLogger(t),
	}, func() error {
		rebuilt <- struct{}{}
		return nil
	})
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(base, "wiki.html"), []byte("out"), 0o644))
	select {
	case <-rebuilt:
		t.Fatal("output write triggered a rebuild")
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(catalog, []byte(`{"a": 1}`), 0o644))
	select {
	case <-rebuilt:
	case <-time.After(2 * time.Second):
		t.Fatal("catalog change did not rebuild")
	}

	require.NoError(t, os.WriteFile(filepath.Join(icons, "SPR_Icon_PC_Viki_01.png"), []byte("png"), 0o644))
	select {
	case <-rebuilt:
	case <-time.After(2 * time.Second):
		t.Fatal("new icon did not rebuild")
	}
}

func TestRunSurvivesRebuildErrors(t *testing.T) {
	base := t.TempDir()
	catalog := filepath.Join(base, "characters.json")
	require.NoError(t, os.WriteFile(catalog, []byte("{}"), 0o644))

	calls := make(chan struct{}, 10)
	stop := start(t, Options{Inputs: []string{catalog}, Debounce: 10 * time.Millisecond}, func() error {
		calls <- struct{}{}
		return errors.New("bad catalog")
	})
	defer stop()

	for i := 0; i < 2; i++ {
		require.NoError(t, os.WriteFile(catalog, []byte("{ broken"), 0o644))
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatalf("rebuild %d not attempted", i+1)
		}
		time.Sleep(50 * time.Millisecond)
	}
}
