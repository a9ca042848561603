package textio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"plain.txt":     "the cat sat",
		"crlf.txt":      "line one\r\nline two\r\n",
		"no-eol.txt":    "no trailing newline",
		"unicode.txt":   "привет, мир!\n",
		"empty.txt":     "",
		"only-seps.txt": " \n\n",
	}
	for name, content := range tests {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		got, err := ReadFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, content, got, name)
	}
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ReadFile(dir)
	assert.Error(t, err)
}

func TestCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	f, err := Create(path)
	require.NoError(t, err)
	_, err = f.WriteString("hello ")
	require.NoError(t, err)
	_, err = f.Write([]byte("world\n"))
	require.NoError(t, err)
	assert.Equal(t, path, f.Name())
	require.NoError(t, f.Close())

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", got)
}

func TestCreateInMissingDir(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "nope", "out.txt"))
	assert.Error(t, err)
}
