package utils

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Document is a named piece of raw text.
type Document struct {
	Name string
	Text string
}

func isTextFile(name string) bool {
	return strings.HasSuffix(name, ".txt") || strings.HasSuffix(name, ".txt.gz")
}

// StreamDocuments reads the .txt and .txt.gz files of dir in name order.
// A file that cannot be read is reported on the error channel and skipped.
func StreamDocuments(ctx context.Context, dir string) (<-chan Document, <-chan error) {
	out := make(chan Document, 100)
	errCh := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errCh)

		entries, err := os.ReadDir(dir)
		if err != nil {
			errCh <- err
			return
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Name() < entries[j].Name()
		})

		for _, e := range entries {
			if ctx.Err() != nil {
				return
			}
			if e.IsDir() || !isTextFile(e.Name()) {
				continue
			}

			text, err := readText(filepath.Join(dir, e.Name()))
			if err != nil {
				select {
				case errCh <- err:
				case <-ctx.Done():
					return
				}
				continue
			}

			select {
			case out <- Document{Name: e.Name(), Text: text}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, errCh
}

// LoadDocuments collects StreamDocuments into a slice. Unreadable files are
// passed to skip, if non-nil, instead of failing the load. Returning early
// cancels the stream so its goroutine exits.
func LoadDocuments(ctx context.Context, dir string, skip func(error)) ([]Document, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	docs, errCh := StreamDocuments(ctx, dir)
	var out []Document
	for docs != nil || errCh != nil {
		select {
		case d, ok := <-docs:
			if !ok {
				docs = nil
				continue
			}
			out = append(out, d)
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			if skip == nil || isDirError(err) {
				return nil, err
			}
			skip(err)
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type readError struct {
	path string
	err  error
}

func (e *readError) Error() string { return fmt.Sprintf("read %s: %v", e.path, e.err) }
func (e *readError) Unwrap() error { return e.err }

// isDirError reports whether err came from listing the directory rather than
// from a single file.
func isDirError(err error) bool {
	var re *readError
	return !errors.As(err, &re)
}

func readText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &readError{path: path, err: err}
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return "", &readError{path: path, err: err}
		}
		defer gz.Close()
		r = gz
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", &readError{path: path, err: err}
	}
	return string(data), nil
}
