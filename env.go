package gofift

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Environment abstracts the host-system operations the interpreter
// needs (spec.md §6): wall-clock time, process environment variables,
// and file access for `include` and the file-reading word library.
type Environment interface {
	NowMS() int64
	GetEnv(name string) (string, bool)
	FileExists(path string) bool
	ReadFile(path string) ([]byte, error)
	ReadFilePart(path string, offset, length int64) ([]byte, error)
	WriteFile(path string, data []byte) error
	// Include resolves name against the environment's search path(s)
	// and returns a reader for it plus its resolved display name, for
	// the `include` word.
	Include(name string) (r ReadCloserNamed, resolvedName string, err error)
}

// ReadCloserNamed is an io.ReadCloser that also knows its own name, for
// the lexer's position-reporting needs.
type ReadCloserNamed interface {
	Read(p []byte) (int, error)
	Close() error
	Name() string
}

// OS implements Environment against the real operating system, with an
// explicit include search path (defaulting from $FIFTPATH), per
// original_source/cli/src/env.rs's IncludeDirs.
type OS struct {
	IncludePath []string
}

// NewOS returns an OS environment, seeding IncludePath from the colon
// separated $FIFTPATH if set.
func NewOS() *OS {
	env := &OS{}
	if p := os.Getenv("FIFTPATH"); p != "" {
		env.IncludePath = strings.Split(p, ":")
	}
	return env
}

func (e *OS) NowMS() int64 { return time.Now().UnixMilli() }

func (e *OS) GetEnv(name string) (string, bool) { return os.LookupEnv(name) }

func (e *OS) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (e *OS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func (e *OS) ReadFilePart(path string, offset, length int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, err
	}
	buf := make([]byte, length)
	n, err := f.Read(buf)
	if err != nil && n == 0 {
		return nil, err
	}
	return buf[:n], nil
}

func (e *OS) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func (e *OS) Include(name string) (ReadCloserNamed, string, error) {
	candidates := []string{name}
	if !filepath.IsAbs(name) {
		for _, dir := range e.IncludePath {
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}
	var firstErr error
	for _, path := range candidates {
		f, err := os.Open(path)
		if err == nil {
			return &namedFile{File: f, name: path}, path, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, "", firstErr
}

type namedFile struct {
	*os.File
	name string
}

func (f *namedFile) Name() string { return f.name }
