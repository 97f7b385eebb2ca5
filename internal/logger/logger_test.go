package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Log("first")
	l.Logf("code %d", 7)
	l.Log("a\n  b")

	assert.Equal(t, "first\ncode 7\na\n  b\n", buf.String())
	assert.Equal(t, []string{"first", "code 7", "a", "  b"}, l.Lines())
}

func TestLinesIsCopy(t *testing.T) {
	l := New(nil)
	l.Log("x")
	lines := l.Lines()
	lines[0] = "y"
	assert.Equal(t, []string{"x"}, l.Lines())
}

func TestSetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gl.txt")
	l := New(nil)
	require.NoError(t, l.SetFile(path))
	l.Log("hello")
	l.Log("world")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	got := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, got, 2)
	assert.True(t, strings.HasPrefix(got[0], "["))
	assert.True(t, strings.HasSuffix(got[0], "] hello"))
	assert.True(t, strings.HasSuffix(got[1], "] world"))

	require.NoError(t, l.SetFile(""))
	l.Log("memory only")
	data2, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, data2)
}
