// Package dynlib opens shared libraries, resolves exported symbols and
// unloads them again. It holds no state beyond the OS handle.
package dynlib

import (
	"errors"
	"fmt"
)

var (
	// ErrOpen reports that the shared object could not be loaded.
	ErrOpen = errors.New("dynlib: cannot open library")

	// ErrSymbolNotFound reports that a symbol is not exported by the library.
	ErrSymbolNotFound = errors.New("dynlib: symbol not found")

	// ErrUnsupportedPlatform is returned on targets without a dynamic loader.
	ErrUnsupportedPlatform = errors.New("dynlib: dynamic loading not supported on this platform")
)

// Library is an open handle to a dynamically loaded shared object. Addresses
// returned by Symbol are invalid once Close has returned.
type Library struct {
	handle uintptr
	path   string
}

// Open loads the shared object at path into the process.
func Open(path string) (*Library, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrOpen)
	}
	h, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrOpen, path, err)
	}
	if h == 0 {
		return nil, fmt.Errorf("%w %s", ErrOpen, path)
	}
	return &Library{handle: h, path: path}, nil
}

// Path returns the path the library was opened from.
func (l *Library) Path() string { return l.path }

// Symbol returns the address of the exported symbol name. A missing symbol
// yields 0 and an error wrapping ErrSymbolNotFound.
func (l *Library) Symbol(name string) (uintptr, error) {
	if l == nil || l.handle == 0 {
		return 0, fmt.Errorf("%w: %s (library not open)", ErrSymbolNotFound, name)
	}
	addr, err := symbol(l.handle, name)
	if err != nil || addr == 0 {
		return 0, fmt.Errorf("%w: %s", ErrSymbolNotFound, name)
	}
	return addr, nil
}

// Close unloads the library. It must be called at most once per successful
// Open; closing a nil Library is a no-op.
func (l *Library) Close() error {
	if l == nil || l.handle == 0 {
		return nil
	}
	err := closeLib(l.handle)
	l.handle = 0
	if err != nil {
		return fmt.Errorf("dynlib: close %s: %w", l.path, err)
	}
	return nil
}
