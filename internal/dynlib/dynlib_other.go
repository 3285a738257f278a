//go:build !darwin && !linux && !windows

package dynlib

func open(string) (uintptr, error) { return 0, ErrUnsupportedPlatform }

func symbol(uintptr, string) (uintptr, error) { return 0, ErrUnsupportedPlatform }

func closeLib(uintptr) error { return ErrUnsupportedPlatform }
