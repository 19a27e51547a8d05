package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beholdr/grimoire/internal/storage"
	"github.com/beholdr/grimoire/internal/storage/fs"
)

func newBackend(t *testing.T) (*fs.Backend, string) {
	t.Helper()
	dir := t.TempDir()
	backend, err := fs.New(&fs.Config{DataDir: dir})
	require.NoError(t, err)
	return backend, dir
}

func TestNewRequiresDataDir(t *testing.T) {
	_, err := fs.New(&fs.Config{})
	require.Error(t, err)

	_, err = fs.New(nil)
	require.Error(t, err)
}

func TestSetupIdempotent(t *testing.T) {
	backend, dir := newBackend(t)
	ctx := context.Background()

	require.NoError(t, backend.Setup(ctx))
	require.NoError(t, backend.Setup(ctx))

	for _, sub := range []string{"monsters", "spells", "combats"} {
		info, err := os.Stat(filepath.Join(dir, sub))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestIndexRoundTrip(t *testing.T) {
	backend, dir := newBackend(t)
	ctx := context.Background()

	data := []byte(`[{"id":"orc-mm"}]`)
	require.NoError(t, backend.StoreIndex(ctx, storage.IndexBeasts, data))

	// Index files live at the data-directory root
	_, err := os.Stat(filepath.Join(dir, "beasts_index.json"))
	require.NoError(t, err)

	got, err := backend.LoadIndex(ctx, storage.IndexBeasts)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	require.NoError(t, backend.DeleteIndex(ctx, storage.IndexBeasts))
	got, err = backend.LoadIndex(ctx, storage.IndexBeasts)
	require.NoError(t, err)
	assert.Nil(t, got, "absent index loads as nil, not an error")

	// Deleting again is a no-op
	require.NoError(t, backend.DeleteIndex(ctx, storage.IndexBeasts))
}

func TestRecordRoundTrip(t *testing.T) {
	backend, dir := newBackend(t)
	ctx := context.Background()

	data := []byte(`{"name":"Orc","source":"MM"}`)
	require.NoError(t, backend.StoreRecord(ctx, storage.KindBeast, "orc-mm.json", data))

	// Record files live in the kind's subdirectory
	_, err := os.Stat(filepath.Join(dir, "monsters", "orc-mm.json"))
	require.NoError(t, err)

	got, err := backend.LoadRecord(ctx, storage.KindBeast, "orc-mm.json")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	missing, err := backend.LoadRecord(ctx, storage.KindBeast, "never-stored.json")
	require.NoError(t, err)
	assert.Nil(t, missing)

	files, err := backend.ListRecordFiles(ctx, storage.KindBeast)
	require.NoError(t, err)
	assert.Equal(t, []string{"orc-mm.json"}, files)

	require.NoError(t, backend.DeleteRecord(ctx, storage.KindBeast, "orc-mm.json"))
	files, err = backend.ListRecordFiles(ctx, storage.KindBeast)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestRecordPathEscapeRejected(t *testing.T) {
	backend, _ := newBackend(t)
	ctx := context.Background()

	err := backend.StoreRecord(ctx, storage.KindBeast, "../escape.json", []byte("{}"))
	require.Error(t, err)
}

func TestListRecordFilesNoDirectory(t *testing.T) {
	backend, _ := newBackend(t)

	files, err := backend.ListRecordFiles(context.Background(), storage.KindSpell)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestMigrateLegacyFlatLayout(t *testing.T) {
	backend, dir := newBackend(t)
	ctx := context.Background()
	require.NoError(t, backend.Setup(ctx))

	// Legacy layout: record files flat at the root, index referencing
	// them by relative path
	orc := []byte(`{"name":"Orc","source":"MM"}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orc-mm.json"), orc, 0o644))
	index := []byte(`[{"id":"orc-mm","name":"Orc","source":"MM","file":"data/orc-mm.json"}]`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "beasts_index.json"), index, 0o644))

	migrated, err := backend.MigrateLegacy(ctx)
	require.NoError(t, err)
	assert.True(t, migrated)

	// Record moved into the subdirectory, legacy copy gone
	got, err := backend.LoadRecord(ctx, storage.KindBeast, "orc-mm.json")
	require.NoError(t, err)
	assert.Equal(t, orc, got)
	_, err = os.Stat(filepath.Join(dir, "orc-mm.json"))
	assert.True(t, os.IsNotExist(err))

	// Index file reference rewritten to the bare filename
	data, err := backend.LoadIndex(ctx, storage.IndexBeasts)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"file":"orc-mm.json"`)
	assert.NotContains(t, string(data), "data/orc-mm.json")
}

func TestMigrateLegacyIdempotent(t *testing.T) {
	backend, dir := newBackend(t)
	ctx := context.Background()
	require.NoError(t, backend.Setup(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "orc-mm.json"),
		[]byte(`{"name":"Orc"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "beasts_index.json"),
		[]byte(`[{"id":"orc-mm","file":"orc-mm.json"}]`), 0o644))

	migrated, err := backend.MigrateLegacy(ctx)
	require.NoError(t, err)
	assert.True(t, migrated)

	// Second run finds nothing to move
	migrated, err = backend.MigrateLegacy(ctx)
	require.NoError(t, err)
	assert.False(t, migrated)
}

func TestMigrateLegacyNothingToDo(t *testing.T) {
	backend, _ := newBackend(t)
	ctx := context.Background()
	require.NoError(t, backend.Setup(ctx))

	migrated, err := backend.MigrateLegacy(ctx)
	require.NoError(t, err)
	assert.False(t, migrated)
}

func TestMigrateLegacyUnreadableIndexSkipped(t *testing.T) {
	backend, dir := newBackend(t)
	ctx := context.Background()
	require.NoError(t, backend.Setup(ctx))

	// A corrupt index must not abort migration of the other kinds
	require.NoError(t, os.WriteFile(filepath.Join(dir, "beasts_index.json"),
		[]byte("{corrupt"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hold-person-phb.json"),
		[]byte(`{"name":"Hold Person"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spells_index.json"),
		[]byte(`[{"id":"hold-person-phb","file":"hold-person-phb.json"}]`), 0o644))

	migrated, err := backend.MigrateLegacy(ctx)
	require.NoError(t, err)
	assert.True(t, migrated)

	got, err := backend.LoadRecord(ctx, storage.KindSpell, "hold-person-phb.json")
	require.NoError(t, err)
	assert.NotNil(t, got)
}
