package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cchk/cchk/internal/domain"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "cchk-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "cchk")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/cchk")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func run(t *testing.T, env []string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), env...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, nil, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "cchk")
}

func TestE2E_CommitValid(t *testing.T) {
	out, code := run(t, nil, "commit", "feat: add the new parser", "--path", t.TempDir())
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "checks passed")
}

func TestE2E_CommitInvalid(t *testing.T) {
	out, code := run(t, nil, "commit", "not a conventional subject", "--path", t.TempDir())
	assert.Equal(t, 1, code, "violations exit non-zero")
	assert.Contains(t, out, "conventional_format")
}

func TestE2E_CommitJSON(t *testing.T) {
	out, code := run(t, nil, "commit", "feat: add the new parser", "--path", t.TempDir(), "--json")
	assert.Equal(t, 0, code)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.NotEmpty(t, report.Results)
}

func TestE2E_CommitConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := "[commit]\nsubject_max_length = 20\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cchk.toml"), []byte(cfg), 0o644))

	_, code := run(t, nil, "commit", "feat: a subject that blows past twenty characters", "--path", dir)
	assert.Equal(t, 1, code)

	_, code = run(t, nil, "commit", "feat: terse", "--path", dir)
	assert.Equal(t, 0, code)
}

func TestE2E_CommitEnvOverride(t *testing.T) {
	env := []string{"CCHK_ALLOW_COMMIT_TYPES=feat,fix"}

	_, code := run(t, env, "commit", "docs: update the readme", "--path", t.TempDir())
	assert.Equal(t, 1, code)

	_, code = run(t, env, "commit", "fix: handle nil payload", "--path", t.TempDir())
	assert.Equal(t, 0, code)
}

func TestE2E_CommitMalformedEnv(t *testing.T) {
	env := []string{"CCHK_SUBJECT_MAX_LENGTH=banana"}

	out, code := run(t, env, "commit", "feat: fine subject", "--path", t.TempDir())
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "CCHK_SUBJECT_MAX_LENGTH")
}

func TestE2E_Branch(t *testing.T) {
	_, code := run(t, nil, "branch", "feature/login-flow", "--path", t.TempDir())
	assert.Equal(t, 0, code)

	out, code := run(t, nil, "branch", "loose-cannon", "--path", t.TempDir())
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "branch_format")
}

func TestE2E_Author(t *testing.T) {
	_, code := run(t, nil, "author", "--name", "Jane Doe", "--email", "jane@example.com", "--path", t.TempDir())
	assert.Equal(t, 0, code)

	_, code = run(t, nil, "author", "--name", "Jane Doe", "--email", "nope", "--path", t.TempDir())
	assert.Equal(t, 1, code)
}

func TestE2E_Config(t *testing.T) {
	out, code := run(t, nil, "config", "--path", t.TempDir())
	assert.Equal(t, 0, code)

	var cfg domain.Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, 80, cfg.Commit.SubjectMaxLength)
}
