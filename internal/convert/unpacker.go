package convert

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"clock3d/internal/utils"
)

// ErrNoEntry is returned when a package does not contain the requested file.
var ErrNoEntry = errors.New("no such package entry")

// maxPkgString bounds names read from a package header.
const maxPkgString = 1 << 16

type FileEntry struct {
	Name   string
	Offset uint32
	Size   uint32
}

// Pkg is the index of a Wallpaper Engine scene.pkg archive.
type Pkg struct {
	Version string
	Entries []FileEntry

	r         io.ReaderAt
	dataStart int64
}

func readPkgString(r io.Reader) (string, error) {
	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return "", err
	}
	if size > maxPkgString {
		return "", fmt.Errorf("string of %d bytes in package header", size)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// countingReader tracks how far the header has been read.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// ReadPkg parses the header of a package read through r. Entry data is read
// lazily with Pkg.ReadEntry.
func ReadPkg(r io.ReaderAt, size int64) (*Pkg, error) {
	cr := &countingReader{r: io.NewSectionReader(r, 0, size)}

	version, err := readPkgString(cr)
	if err != nil {
		return nil, fmt.Errorf("package version: %w", err)
	}
	utils.Debug("Unpacker: Package Version: %s", version)

	var fileCount uint32
	if err := binary.Read(cr, binary.LittleEndian, &fileCount); err != nil {
		return nil, fmt.Errorf("package file count: %w", err)
	}
	utils.Debug("Unpacker: File Count: %d", fileCount)

	pkg := &Pkg{Version: version, r: r}
	for i := uint32(0); i < fileCount; i++ {
		name, err := readPkgString(cr)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		var offset, length uint32
		if err := binary.Read(cr, binary.LittleEndian, &offset); err != nil {
			return nil, fmt.Errorf("entry %s: %w", name, err)
		}
		if err := binary.Read(cr, binary.LittleEndian, &length); err != nil {
			return nil, fmt.Errorf("entry %s: %w", name, err)
		}
		pkg.Entries = append(pkg.Entries, FileEntry{Name: name, Offset: offset, Size: length})
	}
	pkg.dataStart = cr.n

	for _, e := range pkg.Entries {
		if pkg.dataStart+int64(e.Offset)+int64(e.Size) > size {
			return nil, fmt.Errorf("entry %s overruns package", e.Name)
		}
	}
	return pkg, nil
}

// Find returns the entry with the given name. Names use forward slashes.
func (p *Pkg) Find(name string) (FileEntry, bool) {
	name = strings.TrimPrefix(filepath.ToSlash(name), "/")
	for _, e := range p.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return FileEntry{}, false
}

// ReadEntry returns the content of the named entry.
func (p *Pkg) ReadEntry(name string) ([]byte, error) {
	e, ok := p.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoEntry, name)
	}
	buf := make([]byte, e.Size)
	if e.Size == 0 {
		return buf, nil
	}
	if _, err := p.r.ReadAt(buf, p.dataStart+int64(e.Offset)); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadPkgEntry opens pkgPath and reads a single entry from it.
func ReadPkgEntry(pkgPath, name string) ([]byte, error) {
	utils.Debug("Unpacker: Opening package %s", pkgPath)
	f, err := os.Open(pkgPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	pkg, err := ReadPkg(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pkgPath, err)
	}
	return pkg.ReadEntry(name)
}
