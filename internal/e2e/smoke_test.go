package e2e

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	server := newBackendStub(t)
	defer server.Close()

	stdout, stderr, err := runLH(t, binaryPath, home, server.URL, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "dev")

	stdout, stderr, err = runLH(t, binaryPath, home, server.URL,
		"login", "--email", "admin@learnhub.io", "--password", "hunter2")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Logged in as Sarah Lee.")

	stdout, stderr, err = runLH(t, binaryPath, home, server.URL, "whoami")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "name: Sarah Lee")

	stdout, stderr, err = runLH(t, binaryPath, home, server.URL, "courses", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Go Fundamentals")

	stdout, stderr, err = runLH(t, binaryPath, home, server.URL, "logout")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Logged out.")

	_, _, err = runLH(t, binaryPath, home, server.URL, "courses", "list")
	require.Error(t, err)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "lh-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/lh")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build lh binary: %s", string(output))
	return binaryPath
}

func runLH(t *testing.T, binaryPath, home, apiURL string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "LEARNHUB_API_URL="+apiURL)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func newBackendStub(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/login", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"token":"tok-1","user":{"id":"u-1","name":"Sarah Lee"}}`))
	})
	mux.HandleFunc("GET /courses", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"msg":"Token is not valid"}`))
			return
		}
		_, _ = w.Write([]byte(`[{"_id":"c-1","title":"Go Fundamentals","status":"active"}]`))
	})

	return httptest.NewServer(mux)
}
