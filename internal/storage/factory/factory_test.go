package factory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beholdr/grimoire/internal/errors"
	"github.com/beholdr/grimoire/internal/storage/factory"
)

func fsConfig(t *testing.T) *factory.Config {
	t.Helper()
	return &factory.Config{
		Platform: factory.PlatformFS,
		DataDir:  t.TempDir(),
	}
}

func TestGetReturnsSameInstance(t *testing.T) {
	factory.Reset()
	t.Cleanup(factory.Reset)

	first, err := factory.Get(fsConfig(t))
	require.NoError(t, err)
	require.NotNil(t, first)

	// A different config on the second call is ignored; the cached
	// instance wins.
	second, err := factory.Get(&factory.Config{Platform: "bogus"})
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestResetForcesNewInstance(t *testing.T) {
	factory.Reset()
	t.Cleanup(factory.Reset)

	first, err := factory.Get(fsConfig(t))
	require.NoError(t, err)

	factory.Reset()

	second, err := factory.Get(fsConfig(t))
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestConfigValidate(t *testing.T) {
	factory.Reset()
	t.Cleanup(factory.Reset)

	testCases := []struct {
		name string
		cfg  *factory.Config
	}{
		{name: "nil config", cfg: nil},
		{name: "unknown platform", cfg: &factory.Config{Platform: "cloud"}},
		{name: "fs without data dir", cfg: &factory.Config{Platform: factory.PlatformFS}},
		{name: "kv without client or endpoint", cfg: &factory.Config{Platform: factory.PlatformKV}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := factory.Get(tc.cfg)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}
