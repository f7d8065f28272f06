package cmd

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<html><body>
<span id="problem_title">A+B</span>
<div id="problem_description"><p>Add the numbers.</p></div>
<pre class="sampledata">3 4
</pre>
<pre class="sampledata">7
</pre>
</body></html>`

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup (t.Chdir requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(prev)
	})
}

// resetFlags clears the package-level flag state between test runs.
func resetFlags() {
	cfgFile = ""
	verbose = false
	rootSampleOnly = false
	rootInit = false
	rootForce = false
	rootTest = false
	rootRandom = ""
	rootTimeout = 0
	configInitForce = false
}

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetIn(bytes.NewReader(nil))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// writeTestConfig points bojctl at the given problem server and makes
// candidates run as shell scripts.
func writeTestConfig(t *testing.T, dir, serverURL string) {
	t.Helper()
	content := fmt.Sprintf(`boj:
  base_url: %q
  timeout_seconds: 5
run:
  command: ["sh"]
  timeout_seconds: 2
solution:
  dir: %q
  extension: ".sh"
`, serverURL+"/problem/", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bojctl.yaml"), []byte(content), 0o644))
}

func newProblemServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, testPage)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRootCmd_Validation(t *testing.T) {
	t.Run("rejects a non-numeric problem ID", func(t *testing.T) {
		_, err := execute(t, "abc")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid problem ID")
	})

	t.Run("rejects a negative problem ID", func(t *testing.T) {
		_, err := execute(t, "--", "-3")
		require.Error(t, err)
	})

	t.Run("rejects combining --init and --test", func(t *testing.T) {
		_, err := execute(t, "1000", "--init", "--test")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--init and --test")
	})

	t.Run("rejects an unknown random tier", func(t *testing.T) {
		_, err := execute(t, "--random", "zz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid tier")
	})

	t.Run("no arguments shows help", func(t *testing.T) {
		out, err := execute(t)
		require.NoError(t, err)
		assert.Contains(t, out, "bojctl")
	})
}

func TestRootCmd_Show(t *testing.T) {
	server := newProblemServer(t)
	dir := t.TempDir()
	writeTestConfig(t, dir, server.URL)
	chdir(t, dir)

	t.Run("renders the fetched problem", func(t *testing.T) {
		out, err := execute(t, "1000")
		require.NoError(t, err)
		assert.Contains(t, out, "#1000 A+B")
		assert.Contains(t, out, "Add the numbers.")
		assert.Contains(t, out, "Sample Input 1:")
	})

	t.Run("sample-only view", func(t *testing.T) {
		out, err := execute(t, "1000", "--sample")
		require.NoError(t, err)
		assert.NotContains(t, out, "Add the numbers.")
		assert.Contains(t, out, "Sample Input 1:")
	})

	t.Run("fetch failure is a clear error", func(t *testing.T) {
		broken := t.TempDir()
		writeTestConfig(t, broken, "http://127.0.0.1:1")
		chdir(t, broken)

		_, err := execute(t, "1000")
		require.Error(t, err)
	})
}

func TestRootCmd_InitAndTest(t *testing.T) {
	server := newProblemServer(t)

	t.Run("init creates the solution file", func(t *testing.T) {
		dir := t.TempDir()
		writeTestConfig(t, dir, server.URL)
		chdir(t, dir)

		out, err := execute(t, "1000", "--init")
		require.NoError(t, err)
		assert.Contains(t, out, "Created: 1000.sh")

		data, err := os.ReadFile(filepath.Join(dir, "1000.sh"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "# A+B")
	})

	t.Run("init refuses to clobber without force", func(t *testing.T) {
		dir := t.TempDir()
		writeTestConfig(t, dir, server.URL)
		chdir(t, dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "1000.sh"), []byte("mine\n"), 0o644))

		_, err := execute(t, "1000", "--init")
		require.Error(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "1000.sh"))
		require.NoError(t, err)
		assert.Equal(t, "mine\n", string(data))
	})

	t.Run("test without a solution file is a clear error", func(t *testing.T) {
		dir := t.TempDir()
		writeTestConfig(t, dir, server.URL)
		chdir(t, dir)

		_, err := execute(t, "1000", "--test")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("test reports per-sample verdicts and the aggregate", func(t *testing.T) {
		dir := t.TempDir()
		writeTestConfig(t, dir, server.URL)
		chdir(t, dir)

		solution := "read a b\necho $((a + b))\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "1000.sh"), []byte(solution), 0o644))

		out, err := execute(t, "1000", "--test")
		require.NoError(t, err)
		assert.Contains(t, out, "Sample 1: PASSED")
		assert.Contains(t, out, "All tests passed!")
	})

	t.Run("test shows mismatch detail", func(t *testing.T) {
		dir := t.TempDir()
		writeTestConfig(t, dir, server.URL)
		chdir(t, dir)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "1000.sh"), []byte("echo 0\n"), 0o644))

		out, err := execute(t, "1000", "--test")
		require.NoError(t, err)
		assert.Contains(t, out, "Sample 1: FAILED")
		assert.Contains(t, out, "Expected:")
		assert.Contains(t, out, "Actual:")
		assert.Contains(t, out, "Some tests failed.")
	})
}

func TestConfigInitCmd(t *testing.T) {
	t.Run("writes the default config", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)

		out, err := execute(t, "config", "init")
		require.NoError(t, err)
		assert.Contains(t, out, "Created: bojctl.yaml")

		data, err := os.ReadFile(filepath.Join(dir, "bojctl.yaml"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "base_url")
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bojctl.yaml"), []byte("x: 1\n"), 0o644))

		_, err := execute(t, "config", "init")
		require.Error(t, err)
	})

	t.Run("overwrites with force", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bojctl.yaml"), []byte("x: 1\n"), 0o644))

		_, err := execute(t, "config", "init", "--force")
		require.NoError(t, err)
	})
}
