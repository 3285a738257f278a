package fmu

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	// ErrArchive reports an unreadable .fmu archive.
	ErrArchive = errors.New("fmu: cannot read archive")

	// ErrUnsafePath reports an archive entry that would be extracted outside
	// the destination directory.
	ErrUnsafePath = errors.New("fmu: archive entry escapes destination")

	// ErrNoBinary reports that the archive has no library for this platform.
	ErrNoBinary = errors.New("fmu: no binary for platform")
)

const modelDescriptionFile = "modelDescription.xml"

// Unit is an extracted archive.
type Unit struct {
	Dir         string
	Description *ModelDescription

	ownsDir bool
}

// Platform returns the binaries/ subdirectory name for the running platform,
// for example linux64 or win64.
func Platform() string {
	bits := "64"
	switch runtime.GOARCH {
	case "386", "arm", "mips", "mipsle":
		bits = "32"
	}
	goos := runtime.GOOS
	if goos == "windows" {
		goos = "win"
	}
	return goos + bits
}

// LibraryExt returns the shared library extension of the running platform.
func LibraryExt() string {
	switch runtime.GOOS {
	case "windows":
		return ".dll"
	case "darwin":
		return ".dylib"
	default:
		return ".so"
	}
}

// Open extracts the archive into destDir and parses its model description.
// With an empty destDir a temporary directory is created and removed again
// by Close.
func Open(archivePath, destDir string) (*Unit, error) {
	zr, err := zip.OpenReader(archivePath)
	if errors.Is(err, zip.ErrInsecurePath) {
		zr.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsafePath, archivePath)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchive, err)
	}
	defer zr.Close()

	u := &Unit{Dir: destDir}
	if destDir == "" {
		dir, err := os.MkdirTemp("", "fmu-*")
		if err != nil {
			return nil, err
		}
		u.Dir, u.ownsDir = dir, true
	}

	if err := extract(&zr.Reader, u.Dir); err != nil {
		_ = u.Close()
		return nil, err
	}
	md, err := readDescription(u.Dir)
	if err != nil {
		_ = u.Close()
		return nil, err
	}
	u.Description = md
	return u, nil
}

// Load parses an already extracted unit in dir.
func Load(dir string) (*Unit, error) {
	md, err := readDescription(dir)
	if err != nil {
		return nil, err
	}
	return &Unit{Dir: dir, Description: md}, nil
}

func readDescription(dir string) (*ModelDescription, error) {
	f, err := os.Open(filepath.Join(dir, modelDescriptionFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelDescription, err)
	}
	defer f.Close()
	return ParseModelDescription(f)
}

func extract(zr *zip.Reader, dest string) error {
	for _, f := range zr.File {
		if !filepath.IsLocal(f.Name) {
			return fmt.Errorf("%w: %s", ErrUnsafePath, f.Name)
		}
		target := filepath.Join(dest, filepath.FromSlash(f.Name))
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := extractFile(f, target); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrArchive, f.Name, err)
		}
	}
	return nil
}

func extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o755)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// LibraryPath returns the path of the unit's shared library for the running
// platform and the requested interface.
func (u *Unit) LibraryPath(coSimulation bool) (string, error) {
	id, err := u.Description.ModelIdentifier(coSimulation)
	if err != nil {
		return "", err
	}
	path := filepath.Join(u.Dir, "binaries", Platform(), id+LibraryExt())
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrNoBinary, Platform(), err)
	}
	return path, nil
}

// ResourceLocation returns the file:// URI of the unit's resources
// directory, as passed to fmi2Instantiate.
func (u *Unit) ResourceLocation() (string, error) {
	abs, err := filepath.Abs(filepath.Join(u.Dir, "resources"))
	if err != nil {
		return "", err
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String(), nil
}

// Close removes the extraction directory if Open created it.
func (u *Unit) Close() error {
	if u == nil || !u.ownsDir || u.Dir == "" {
		return nil
	}
	err := os.RemoveAll(u.Dir)
	u.ownsDir = false
	return err
}
