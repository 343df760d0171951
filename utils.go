package decomposer

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const DefaultFolderPerm = 0777

var defaultDecoder = charmap.Windows1252.NewDecoder()

// decodeText returns s unchanged when it is valid UTF-8 and decodes it as
// Windows-1252 otherwise.
func decodeText(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	out, err := defaultDecoder.String(s)
	if err != nil {
		return strings.ToValidUTF8(s, "�")
	}
	return out
}

// ExecCmd runs command and returns its combined output. A failure carries
// the output in the error.
func ExecCmd(command string, args ...string) ([]byte, error) {
	cmd := exec.Command(command, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, fmt.Errorf("%s: %w", output, err)
	}
	return output, nil
}

// IsURL reports whether source should be downloaded before processing.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// DownloadFileTemporary fetches link into a temporary file keeping its
// extension. The caller removes the file; on error nothing is left behind.
func DownloadFileTemporary(link string) (_ *os.File, err error) {
	st := time.Now()
	log.Println("[>] Downloading file temporary")
	defer func() {
		log.Printf("[<] Downloading %s in %s...", link, time.Since(st))
	}()

	ext := path.Ext(strings.SplitN(link, "?", 2)[0])

	resp, err := http.Get(link)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(resp.Status)
	}

	f, err := os.CreateTemp("", "tmpfile-*"+ext)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if _, err = io.Copy(f, resp.Body); err != nil {
		return nil, err
	}
	if err = f.Sync(); err != nil {
		return nil, err
	}
	return f, nil
}
