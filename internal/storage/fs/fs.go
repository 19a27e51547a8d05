// Package fs implements the storage backend over the device file system,
// the analog of the mobile persistence path. Individual records live in
// per-kind subdirectories under the application data directory; index and
// list files sit at the directory root as plain JSON documents.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/beholdr/grimoire/internal/errors"
	"github.com/beholdr/grimoire/internal/storage"
)

// Per-kind record subdirectories
var recordDirs = map[storage.RecordKind]string{
	storage.KindBeast:  "monsters",
	storage.KindSpell:  "spells",
	storage.KindCombat: "combats",
}

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config contains configuration for the file-system backend
type Config struct {
	// DataDir is the application data directory root
	DataDir string
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DataDir == "" {
		return errors.InvalidArgument("data directory cannot be empty")
	}
	return nil
}

// Backend is the file-system storage backend
type Backend struct {
	dataDir string
}

// New creates a new file-system backend
func New(cfg *Config) (*Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Backend{dataDir: cfg.DataDir}, nil
}

func (b *Backend) indexPath(name storage.IndexName) string {
	return filepath.Join(b.dataDir, string(name)+".json")
}

func (b *Backend) recordPath(kind storage.RecordKind, file string) (string, error) {
	dir, ok := recordDirs[kind]
	if !ok {
		return "", errors.InvalidArgumentf("unknown record kind %q", string(kind))
	}
	// Record files are flat names derived by SafeFilename; reject anything
	// that would escape the kind's directory.
	if file != filepath.Base(file) {
		return "", errors.InvalidArgumentf("invalid record file %q", file)
	}
	return filepath.Join(b.dataDir, dir, file), nil
}

// StoreIndex writes an index document at the data-directory root
func (b *Backend) StoreIndex(_ context.Context, name storage.IndexName, data []byte) error {
	if err := os.MkdirAll(b.dataDir, dirPerm); err != nil {
		return errors.Wrap(err, "failed to create data directory")
	}
	path := b.indexPath(name)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// LoadIndex reads an index document; (nil, nil) when absent
func (b *Backend) LoadIndex(_ context.Context, name storage.IndexName) ([]byte, error) {
	data, err := os.ReadFile(b.indexPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read %s", b.indexPath(name))
	}
	return data, nil
}

// DeleteIndex removes an index document; absence is a no-op
func (b *Backend) DeleteIndex(_ context.Context, name storage.IndexName) error {
	if err := os.Remove(b.indexPath(name)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to remove %s", b.indexPath(name))
	}
	return nil
}

// StoreRecord writes an individual record file in its kind's subdirectory
func (b *Backend) StoreRecord(_ context.Context, kind storage.RecordKind, file string, data []byte) error {
	path, err := b.recordPath(kind, file)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return errors.Wrapf(err, "failed to create %s directory", recordDirs[kind])
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// LoadRecord reads an individual record file; (nil, nil) when absent
func (b *Backend) LoadRecord(_ context.Context, kind storage.RecordKind, file string) ([]byte, error) {
	path, err := b.recordPath(kind, file)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return data, nil
}

// DeleteRecord removes an individual record file; absence is a no-op
func (b *Backend) DeleteRecord(_ context.Context, kind storage.RecordKind, file string) error {
	path, err := b.recordPath(kind, file)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to remove %s", path)
	}
	return nil
}

// ListRecordFiles enumerates the record files in a kind's subdirectory
func (b *Backend) ListRecordFiles(_ context.Context, kind storage.RecordKind) ([]string, error) {
	dir, ok := recordDirs[kind]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown record kind %q", string(kind))
	}
	entries, err := os.ReadDir(filepath.Join(b.dataDir, dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to list %s", dir)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

// Setup creates the data directory and every per-kind subdirectory.
// Idempotent; safe to run on every startup.
func (b *Backend) Setup(_ context.Context) error {
	if err := os.MkdirAll(b.dataDir, dirPerm); err != nil {
		return errors.Wrap(err, "failed to create data directory")
	}
	for _, dir := range recordDirs {
		if err := os.MkdirAll(filepath.Join(b.dataDir, dir), dirPerm); err != nil {
			return errors.Wrapf(err, "failed to create %s directory", dir)
		}
	}
	return nil
}
