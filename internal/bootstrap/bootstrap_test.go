package bootstrap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	calls [][]string
	fail  string // command name to fail on, empty for none
}

func (f *fakeRunner) Run(name string, args ...string) error {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.fail != "" && len(args) > 0 && args[0] == f.fail {
		return os.ErrPermission
	}
	return nil
}

func TestPrepareFreshDirectory(t *testing.T) {
	dir := t.TempDir()
	r := &fakeRunner{}

	initialized, err := Prepare(dir, r)
	require.NoError(t, err)
	assert.True(t, initialized)

	require.Len(t, r.calls, 4)
	assert.Equal(t, []string{"git", "init"}, r.calls[0])
	assert.Equal(t, []string{"git", "add", "."}, r.calls[1])
	assert.Equal(t, []string{"git", "commit", "-m", initialCommitMessage}, r.calls[2])
	assert.Equal(t, []string{"git", "branch", "-M", "main"}, r.calls[3])
}

func TestPrepareExistingCheckout(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	r := &fakeRunner{}

	initialized, err := Prepare(dir, r)
	require.NoError(t, err)
	assert.False(t, initialized)

	require.Len(t, r.calls, 2)
	assert.Equal(t, []string{"git", "add", "."}, r.calls[0])
	require.Len(t, r.calls[1], 4)
	assert.Equal(t, "commit", r.calls[1][1])
	assert.True(t, strings.HasPrefix(r.calls[1][3], "Update "), "commit message %q", r.calls[1][3])
}

// Running twice never reinitializes: the second run must take the
// already-initialized branch.
func TestPrepareTwice(t *testing.T) {
	dir := t.TempDir()
	r := &fakeRunner{}

	initialized, err := Prepare(dir, r)
	require.NoError(t, err)
	assert.True(t, initialized)

	// Prepare itself does not create .git (git would); simulate it.
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))

	r2 := &fakeRunner{}
	initialized, err = Prepare(dir, r2)
	require.NoError(t, err)
	assert.False(t, initialized)
	for _, call := range r2.calls {
		assert.NotEqual(t, "init", call[1])
	}
}

func TestPreparePropagatesFailure(t *testing.T) {
	dir := t.TempDir()
	r := &fakeRunner{fail: "commit"}

	_, err := Prepare(dir, r)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)
}
