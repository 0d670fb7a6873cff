package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"

	"github.com/dd0wney/cluso-netsci/pkg/graph"
)

// SnappySuffix marks files written with snappy stream framing.
const SnappySuffix = ".sz"

// IsCompressed reports whether path will be snappy-framed.
func IsCompressed(path string) bool {
	return strings.HasSuffix(path, SnappySuffix)
}

// WriteFile writes g as GEXF to path, snappy-framed when the path ends in
// ".sz". The file is written to a temporary sibling and renamed into place.
// It returns the number of bytes on disk.
func WriteFile(path string, g *graph.Graph, opts GEXFOptions) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := writeTo(tmp, path, g, opts); err != nil {
		tmp.Close()
		return 0, err
	}

	info, err := tmp.Stat()
	if err != nil {
		tmp.Close()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return 0, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, fmt.Errorf("failed to rename into %s: %w", path, err)
	}
	return info.Size(), nil
}

func writeTo(f *os.File, path string, g *graph.Graph, opts GEXFOptions) error {
	if IsCompressed(path) {
		sw := snappy.NewBufferedWriter(f)
		if err := WriteGEXF(sw, g, opts); err != nil {
			return err
		}
		if err := sw.Close(); err != nil {
			return fmt.Errorf("failed to flush snappy stream: %w", err)
		}
		return nil
	}

	bw := bufio.NewWriter(f)
	if err := WriteGEXF(bw, g, opts); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadFile reads a GEXF file written by WriteFile.
func ReadFile(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	if IsCompressed(path) {
		r = snappy.NewReader(f)
	}
	return ReadGEXF(r)
}
