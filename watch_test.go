package pagewire

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchSiteInvalidatesShells(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(page, []byte("v1"), 0o644))

	shells := NewShellCache(os.DirFS(dir), time.Hour)
	w, err := watchSite(dir, shells, log.New("test"))
	require.NoError(t, err)
	defer w.Close()

	raw, err := shells.Get("index.html")
	require.NoError(t, err)
	require.Equal(t, "v1", string(raw))

	require.NoError(t, os.WriteFile(page, []byte("v2"), 0o644))

	assert.Eventually(t, func() bool {
		raw, err := shells.Get("index.html")
		return err == nil && string(raw) == "v2"
	}, 2*time.Second, 20*time.Millisecond)
}
