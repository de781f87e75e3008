package thriftio_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thrift-tools/thriftls/private/thriftls/thriftio"
)

func TestOSReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "shared.thrift")
	require.NoError(t, os.WriteFile(path, []byte("struct Foo {}\n"), 0o644))

	content, err := thriftio.OS{}.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "struct Foo {}\n", content)
}

func TestOSReadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := thriftio.OS{}.ReadFile(filepath.Join(t.TempDir(), "missing.thrift"))
	assert.Error(t, err)
}

func TestFuncAdapter(t *testing.T) {
	t.Parallel()

	calls := map[string]string{"a.thrift": "struct A {}"}
	reader := thriftio.Func(func(path string) (string, error) {
		content, ok := calls[path]
		if !ok {
			return "", errors.New("not found: " + path)
		}
		return content, nil
	})

	var r thriftio.Reader = reader
	content, err := r.ReadFile("a.thrift")
	require.NoError(t, err)
	assert.Equal(t, "struct A {}", content)

	_, err = r.ReadFile("b.thrift")
	assert.Error(t, err)
}
