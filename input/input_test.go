package input

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "1", "a")
	write(t, dir, "24.txt", "b")
	write(t, dir, "7.in.txt", "c")
	write(t, dir, "README.md", "ignored")
	write(t, dir, "x24", "ignored")
	write(t, dir, "0", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "3"), 0755))

	c, err := Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 7, 24}, c.Days())
	latest, err := c.Latest()
	require.NoError(t, err)
	assert.Equal(t, 24, latest)
	assert.True(t, c.Has(7))
	assert.False(t, c.Has(3))

	path, err := c.Path(24)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "24.txt"), path)
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "2", "7 6 4\r\n1 2 7\r\n")
	c, err := Scan(dir)
	require.NoError(t, err)
	got, err := c.Read(2)
	require.NoError(t, err)
	assert.Equal(t, "7 6 4\n1 2 7\n", got)
}

func TestMissing(t *testing.T) {
	c, err := Scan(t.TempDir())
	require.NoError(t, err)
	_, err = c.Latest()
	assert.Error(t, err)

	_, err = c.Read(5)
	var mie *MissingInputError
	require.True(t, errors.As(err, &mie))
	assert.Equal(t, 5, mie.Day)
}

func TestScanErrors(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)

	dir := t.TempDir()
	write(t, dir, "4", "a")
	write(t, dir, "4.txt", "b")
	_, err = Scan(dir)
	assert.Error(t, err)
}
