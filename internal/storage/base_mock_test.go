package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/beholdr/grimoire/internal/entities"
	"github.com/beholdr/grimoire/internal/errors"
	"github.com/beholdr/grimoire/internal/storage"
	storagemock "github.com/beholdr/grimoire/internal/storage/mock"
)

type BaseProviderMockSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockBackend *storagemock.MockBackend
	provider    storage.Provider
	ctx         context.Context
}

func (s *BaseProviderMockSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBackend = storagemock.NewMockBackend(s.ctrl)

	provider, err := storage.New(&storage.Config{Backend: s.mockBackend})
	s.Require().NoError(err)
	s.provider = provider
	s.ctx = context.Background()
}

func (s *BaseProviderMockSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BaseProviderMockSuite) TestNewRequiresBackend() {
	_, err := storage.New(&storage.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = storage.New(nil)
	s.Require().Error(err)
}

func (s *BaseProviderMockSuite) TestLoadIndexBackendFailureTreatedAsAbsent() {
	s.mockBackend.EXPECT().
		LoadIndex(s.ctx, storage.IndexBeasts).
		Return(nil, errors.Internal("disk exploded"))

	out, err := s.provider.LoadBeastsIndex(s.ctx, &storage.LoadBeastsIndexInput{})
	s.Require().NoError(err, "load failures never propagate past the provider boundary")
	s.Empty(out.Entries)
}

func (s *BaseProviderMockSuite) TestLoadIndexCorruptTreatedAsAbsent() {
	s.mockBackend.EXPECT().
		LoadIndex(s.ctx, storage.IndexSpells).
		Return([]byte("{not json"), nil)

	out, err := s.provider.LoadSpellsIndex(s.ctx, &storage.LoadSpellsIndexInput{})
	s.Require().NoError(err)
	s.Empty(out.Entries)
}

func (s *BaseProviderMockSuite) TestLoadBeastBackendFailureTreatedAsAbsent() {
	s.mockBackend.EXPECT().
		LoadRecord(s.ctx, storage.KindBeast, "orc-mm.json").
		Return(nil, errors.Internal("unreadable"))

	out, err := s.provider.LoadBeast(s.ctx, &storage.LoadBeastInput{File: "orc-mm.json"})
	s.Require().NoError(err)
	s.False(out.Found)
}

func (s *BaseProviderMockSuite) TestLoadBeastEmptyFileRejected() {
	_, err := s.provider.LoadBeast(s.ctx, &storage.LoadBeastInput{File: ""})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *BaseProviderMockSuite) TestGetStorageInfoToleratesBackendFailure() {
	s.mockBackend.EXPECT().
		LoadIndex(s.ctx, storage.IndexBeasts).
		Return(nil, errors.Internal("boom"))
	s.mockBackend.EXPECT().
		LoadIndex(s.ctx, storage.IndexSpells).
		Return([]byte(`[{"id":"fireball-phb"}]`), nil)

	out, err := s.provider.GetStorageInfo(s.ctx, &storage.GetStorageInfoInput{})
	s.Require().NoError(err)
	s.Zero(out.Info.BeastCount)
	s.Equal(1, out.Info.SpellCount)
	s.Positive(out.Info.SpellBytes)
}

func (s *BaseProviderMockSuite) TestStoreBeastsIndexStoreFailurePropagates() {
	s.mockBackend.EXPECT().
		DeleteIndex(s.ctx, storage.IndexBeasts).
		Return(nil)
	s.mockBackend.EXPECT().
		ListRecordFiles(s.ctx, storage.KindBeast).
		Return(nil, nil)
	s.mockBackend.EXPECT().
		StoreRecord(s.ctx, storage.KindBeast, "orc-mm.json", gomock.Any()).
		Return(errors.Unavailable("store offline"))

	_, err := s.provider.StoreBeastsIndex(s.ctx, &storage.StoreBeastsIndexInput{
		Beasts: []entities.Record{{"name": "Orc", "source": "MM"}},
	})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *BaseProviderMockSuite) TestMigrateLegacyDataReportsFailure() {
	s.mockBackend.EXPECT().
		MigrateLegacy(s.ctx).
		Return(false, errors.Internal("legacy dir unreadable"))

	_, err := s.provider.MigrateLegacyData(s.ctx, &storage.MigrateLegacyDataInput{})
	s.Require().Error(err)
}

func (s *BaseProviderMockSuite) TestEnsureDataDirectoryDelegates() {
	s.mockBackend.EXPECT().
		Setup(s.ctx).
		Return(nil)

	_, err := s.provider.EnsureDataDirectory(s.ctx, &storage.EnsureDataDirectoryInput{})
	s.Require().NoError(err)
}

func TestBaseProviderMockSuite(t *testing.T) {
	suite.Run(t, new(BaseProviderMockSuite))
}
