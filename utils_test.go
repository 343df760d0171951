package decomposer

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadFileTemporary(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/deck.pptx":
			w.Write([]byte("pptx bytes"))
		case "/truncated.pptx":
			w.Header().Set("Content-Length", "100")
			w.Write([]byte("short"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f, err := DownloadFileTemporary(srv.URL + "/deck.pptx?token=1")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	defer f.Close()
	assert.Equal(t, ".pptx", filepath.Ext(f.Name()))
	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, "pptx bytes", string(data))

	_, err = DownloadFileTemporary(srv.URL + "/missing.pptx")
	assert.Error(t, err)

	_, err = DownloadFileTemporary(srv.URL + "/truncated.pptx")
	assert.Error(t, err)

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "only the successful download stays")
}

func TestExecCmd(t *testing.T) {
	out, err := ExecCmd("sh", "-c", "echo ok")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", string(out))

	out, err = ExecCmd("sh", "-c", "echo broken; exit 3")
	require.Error(t, err)
	assert.Equal(t, "broken\n", string(out))
	assert.Contains(t, err.Error(), "broken")
}
