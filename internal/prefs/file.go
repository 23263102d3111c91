package prefs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gofrs/flock"
)

const (
	fileLockTimeout = 5 * time.Second
	fileLockRetry   = 50 * time.Millisecond
)

type fileDoc struct {
	Preferences map[string]string `toml:"preferences"`
}

// File keeps preferences in a TOML file guarded by an adjacent .lock file,
// so several tool processes can share it.
type File struct {
	path string
	lock *flock.Flock
}

func OpenFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating prefs directory: %w", err)
	}
	return &File{path: path, lock: flock.New(path + ".lock")}, nil
}

func (f *File) GetString(ctx context.Context, key, def string) (string, error) {
	if err := f.acquire(ctx, false); err != nil {
		return def, err
	}
	defer f.lock.Unlock()

	doc, err := f.read()
	if err != nil {
		return def, err
	}
	if v, ok := doc.Preferences[key]; ok {
		return v, nil
	}
	return def, nil
}

func (f *File) PutString(ctx context.Context, key, value string) error {
	if err := f.acquire(ctx, true); err != nil {
		return err
	}
	defer f.lock.Unlock()

	doc, err := f.read()
	if err != nil {
		return err
	}
	doc.Preferences[key] = value
	return f.write(doc)
}

func (f *File) Close() error { return nil }

func (f *File) acquire(ctx context.Context, exclusive bool) error {
	ctx, cancel := context.WithTimeout(ctx, fileLockTimeout)
	defer cancel()

	var (
		locked bool
		err    error
	)
	if exclusive {
		locked, err = f.lock.TryLockContext(ctx, fileLockRetry)
	} else {
		locked, err = f.lock.TryRLockContext(ctx, fileLockRetry)
	}
	if err != nil {
		return fmt.Errorf("acquiring prefs lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("timeout waiting for prefs lock")
	}
	return nil
}

func (f *File) read() (fileDoc, error) {
	doc := fileDoc{Preferences: make(map[string]string)}
	if _, err := toml.DecodeFile(f.path, &doc); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doc, nil
		}
		return doc, fmt.Errorf("reading prefs: %w", err)
	}
	if doc.Preferences == nil {
		doc.Preferences = make(map[string]string)
	}
	return doc, nil
}

func (f *File) write(doc fileDoc) error {
	tmp := f.path + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("writing prefs: %w", err)
	}
	if err := toml.NewEncoder(out).Encode(doc); err != nil {
		out.Close()
		os.Remove(tmp)
		return fmt.Errorf("encoding prefs: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing prefs: %w", err)
	}
	return os.Rename(tmp, f.path)
}
