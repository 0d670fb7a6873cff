// Package publish copies run artifacts to a local directory or an
// S3-compatible bucket.
package publish

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dd0wney/cluso-netsci/pkg/logging"
)

// Publisher stores one named artifact and returns where it ended up.
type Publisher interface {
	Publish(ctx context.Context, name string, r io.Reader) (string, error)
}

// Result is one published artifact.
type Result struct {
	Name     string
	Location string
	Bytes    int64
}

// LocalPublisher writes artifacts into Dir.
type LocalPublisher struct {
	Dir string
}

// Publish writes r to Dir/name atomically.
func (p *LocalPublisher) Publish(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := checkName(name); err != nil {
		return "", err
	}
	if err := os.MkdirAll(p.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create publish dir: %w", err)
	}

	dest := filepath.Join(p.Dir, name)
	tmp, err := os.CreateTemp(p.Dir, "."+name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmpName, dest); err != nil {
		return "", fmt.Errorf("failed to move %s into place: %w", name, err)
	}
	return dest, nil
}

// checkName rejects names that would escape the target directory or prefix.
func checkName(name string) error {
	if name == "" || name != path.Base(name) || name == "." || name == ".." || strings.ContainsRune(name, '\\') {
		return fmt.Errorf("invalid artifact name %q", name)
	}
	return nil
}

// PublishFiles sends every file to every publisher under its base name.
// It stops at the first failure.
func PublishFiles(ctx context.Context, log logging.Logger, pubs []Publisher, files []string) ([]Result, error) {
	var out []Result
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			return out, fmt.Errorf("failed to stat artifact: %w", err)
		}
		name := filepath.Base(file)

		for _, p := range pubs {
			loc, err := publishFile(ctx, p, name, file)
			if err != nil {
				log.Error("publish failed", logging.Path(file), logging.Error(err))
				return out, err
			}
			log.Info("artifact published",
				logging.Path(file),
				logging.String("location", loc),
				logging.Int64("bytes", info.Size()),
			)
			out = append(out, Result{Name: name, Location: loc, Bytes: info.Size()})
		}
	}
	return out, nil
}

func publishFile(ctx context.Context, p Publisher, name, file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return p.Publish(ctx, name, f)
}

// contentType maps artifact extensions to MIME types.
func contentType(name string) string {
	switch {
	case strings.HasSuffix(name, ".sz"):
		return "application/x-snappy-framed"
	case strings.HasSuffix(name, ".gexf"):
		return "application/gexf+xml"
	case strings.HasSuffix(name, ".json"):
		return "application/json"
	case strings.HasSuffix(name, ".csv"):
		return "text/csv"
	case strings.HasSuffix(name, ".prom"), strings.HasSuffix(name, ".txt"):
		return "text/plain; version=0.0.4"
	default:
		return "application/octet-stream"
	}
}
