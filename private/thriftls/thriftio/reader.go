// Package thriftio abstracts reading the contents of an included Thrift
// file. The analyzer itself never touches the filesystem directly so that
// a host (editor integration, test harness) can inject an in-memory or
// virtual filesystem in front of the native one.
package thriftio

import "os"

// Reader reads the full contents of a file at path. Implementations should
// return an error wrapping the underlying cause (permission, not-found) so
// the analyzer can surface it verbatim in a diagnostic.
type Reader interface {
	ReadFile(path string) (string, error)
}

// OS reads directly from the native filesystem.
type OS struct{}

// ReadFile implements Reader.
func (OS) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Func adapts a plain function to the Reader interface.
type Func func(path string) (string, error)

// ReadFile implements Reader.
func (f Func) ReadFile(path string) (string, error) {
	return f(path)
}
