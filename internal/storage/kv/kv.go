// Package kv implements the storage backend over a key-value store, the
// analog of the browser persistence path. All documents live in one flat
// key space: fixed keys for indexes and lists, prefixed keys for individual
// records. There is no directory concept, so setup and legacy migration are
// no-ops.
package kv

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	"github.com/beholdr/grimoire/internal/errors"
	redisclient "github.com/beholdr/grimoire/internal/redis"
	"github.com/beholdr/grimoire/internal/storage"
)

// Fixed key table: abstract index names map 1:1 to storage keys
var indexKeys = map[storage.IndexName]string{
	storage.IndexBeasts:       "beasts_index",
	storage.IndexSpells:       "spells_index",
	storage.IndexCombats:      "combats_index",
	storage.IndexSpellClasses: "spell_classes_index",
	storage.IndexPlayers:      "players",
	storage.IndexSpellbooks:   "spellbooks",
}

// Record key prefixes; the suffix is the record's file reference
var recordPrefixes = map[storage.RecordKind]string{
	storage.KindBeast:  "monster:",
	storage.KindSpell:  "spell:",
	storage.KindCombat: "combat:",
}

const scanBatchSize = 200

// Config contains configuration for the key-value backend
type Config struct {
	Client redisclient.Client
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// Backend is the key-value storage backend
type Backend struct {
	client redisclient.Client
}

// New creates a new key-value backend
func New(cfg *Config) (*Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Backend{client: cfg.Client}, nil
}

func indexKey(name storage.IndexName) (string, error) {
	key, ok := indexKeys[name]
	if !ok {
		return "", errors.InvalidArgumentf("unknown index %q", string(name))
	}
	return key, nil
}

func recordKey(kind storage.RecordKind, file string) (string, error) {
	prefix, ok := recordPrefixes[kind]
	if !ok {
		return "", errors.InvalidArgumentf("unknown record kind %q", string(kind))
	}
	return prefix + file, nil
}

// StoreIndex stores an index document under its fixed key
func (b *Backend) StoreIndex(ctx context.Context, name storage.IndexName, data []byte) error {
	key, err := indexKey(name)
	if err != nil {
		return err
	}
	if err := b.client.Set(ctx, key, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to set %s", key)
	}
	return nil
}

// LoadIndex loads an index document; (nil, nil) when absent
func (b *Backend) LoadIndex(ctx context.Context, name storage.IndexName) ([]byte, error) {
	key, err := indexKey(name)
	if err != nil {
		return nil, err
	}
	data, err := b.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to get %s", key)
	}
	return data, nil
}

// DeleteIndex removes an index document; absence is a no-op
func (b *Backend) DeleteIndex(ctx context.Context, name storage.IndexName) error {
	key, err := indexKey(name)
	if err != nil {
		return err
	}
	if err := b.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete %s", key)
	}
	return nil
}

// StoreRecord stores an individual record under its prefixed key
func (b *Backend) StoreRecord(ctx context.Context, kind storage.RecordKind, file string, data []byte) error {
	key, err := recordKey(kind, file)
	if err != nil {
		return err
	}
	if err := b.client.Set(ctx, key, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to set %s", key)
	}
	return nil
}

// LoadRecord loads an individual record; (nil, nil) when absent
func (b *Backend) LoadRecord(ctx context.Context, kind storage.RecordKind, file string) ([]byte, error) {
	key, err := recordKey(kind, file)
	if err != nil {
		return nil, err
	}
	data, err := b.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to get %s", key)
	}
	return data, nil
}

// DeleteRecord removes an individual record; absence is a no-op
func (b *Backend) DeleteRecord(ctx context.Context, kind storage.RecordKind, file string) error {
	key, err := recordKey(kind, file)
	if err != nil {
		return err
	}
	if err := b.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete %s", key)
	}
	return nil
}

// ListRecordFiles enumerates the stored record files of a kind by scanning
// the kind's key prefix
func (b *Backend) ListRecordFiles(ctx context.Context, kind storage.RecordKind) ([]string, error) {
	prefix, ok := recordPrefixes[kind]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown record kind %q", string(kind))
	}

	var files []string
	var cursor uint64
	for {
		keys, next, err := b.client.Scan(ctx, cursor, prefix+"*", scanBatchSize).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to scan %s keys", prefix)
		}
		for _, key := range keys {
			files = append(files, key[len(prefix):])
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return files, nil
}

// Setup is a no-op; a key-value store has no directory layout
func (b *Backend) Setup(_ context.Context) error {
	return nil
}

// MigrateLegacy is a no-op; the key-value layout never changed
func (b *Backend) MigrateLegacy(_ context.Context) (bool, error) {
	return false, nil
}
