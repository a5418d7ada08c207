package encounters_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/combat-tracker/internal/engine"
	"github.com/KirkDiggler/combat-tracker/internal/entities/encounter"
	"github.com/KirkDiggler/combat-tracker/internal/errors"
	"github.com/KirkDiggler/combat-tracker/internal/pkg/idgen"
	"github.com/KirkDiggler/combat-tracker/internal/repositories/encounters"
	"github.com/KirkDiggler/combat-tracker/internal/storage/memory"
	storagemock "github.com/KirkDiggler/combat-tracker/internal/storage/mock"
	"github.com/KirkDiggler/combat-tracker/internal/testutils"
)

type RepositoryTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockMedium *storagemock.MockMedium
	mockRepo   encounters.Repository
	memory     *memory.Medium
	repo       encounters.Repository
	ids        *idgen.SequentialGenerator
	ctx        context.Context
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockMedium = storagemock.NewMockMedium(s.ctrl)
	s.ctx = context.Background()
	s.ids = idgen.NewSequential("id")

	var err error
	s.mockRepo, err = encounters.NewRepository(&encounters.Config{Medium: s.mockMedium})
	s.Require().NoError(err)

	s.memory, err = memory.New(nil)
	s.Require().NoError(err)
	s.repo, err = encounters.NewRepository(&encounters.Config{Medium: s.memory})
	s.Require().NoError(err)
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RepositoryTestSuite) record(name string) encounter.SavedRecord {
	return encounter.NewRecord(testutils.SampleState(), name, testutils.FixedTime, s.ids)
}

func (s *RepositoryTestSuite) TestNewRepositoryRequiresMedium() {
	_, err := encounters.NewRepository(&encounters.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = encounters.NewRepository(nil)
	s.Error(err)
}

func (s *RepositoryTestSuite) TestCheckAvailability() {
	s.Run("writes and removes the probe key", func() {
		gomock.InOrder(
			s.mockMedium.EXPECT().Set(s.ctx, encounters.ProbeKey, "1").Return(nil),
			s.mockMedium.EXPECT().Delete(s.ctx, encounters.ProbeKey).Return(nil),
		)
		s.NoError(s.mockRepo.CheckAvailability(s.ctx))
	})

	s.Run("blocked write", func() {
		s.mockMedium.EXPECT().Set(s.ctx, encounters.ProbeKey, "1").Return(errors.ResourceExhausted("quota exceeded"))

		err := s.mockRepo.CheckAvailability(s.ctx)
		s.Require().Error(err)
		s.True(errors.IsUnavailable(err))
		s.Contains(errors.GetMessage(err), "quota exceeded")
	})

	s.Run("medium panics", func() {
		s.mockMedium.EXPECT().Set(s.ctx, encounters.ProbeKey, "1").DoAndReturn(
			func(context.Context, string, string) error {
				panic("SecurityError: storage disabled")
			})

		err := s.mockRepo.CheckAvailability(s.ctx)
		s.Require().Error(err)
		s.True(errors.IsUnavailable(err))
	})

	s.Run("leaves nothing behind", func() {
		s.Require().NoError(s.repo.CheckAvailability(s.ctx))
		s.Equal(0, s.memory.Keys())
	})
}

func (s *RepositoryTestSuite) TestActiveState() {
	s.Run("empty slot", func() {
		out, err := s.repo.LoadActiveState(s.ctx)
		s.Require().NoError(err)
		s.False(out.Found)
		s.Equal(engine.EmptyState(), out.State)
	})

	s.Run("round trip", func() {
		state := testutils.SampleState()
		s.Require().NoError(s.repo.SaveActiveState(s.ctx, encounters.SaveActiveStateInput{State: state}))

		out, err := s.repo.LoadActiveState(s.ctx)
		s.Require().NoError(err)
		s.True(out.Found)
		s.Equal(state, out.State)
	})

	s.Run("clear", func() {
		s.Require().NoError(s.repo.ClearActiveState(s.ctx))
		out, err := s.repo.LoadActiveState(s.ctx)
		s.Require().NoError(err)
		s.False(out.Found)
	})

	s.Run("written as JSON", func() {
		s.mockMedium.EXPECT().Set(s.ctx, encounters.ActiveStateKey, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, value string) error {
				var decoded map[string]interface{}
				s.Require().NoError(json.Unmarshal([]byte(value), &decoded))
				s.Equal([]interface{}{}, decoded["combatants"])
				s.Equal(float64(-1), decoded["activeIndex"])
				return nil
			})
		s.NoError(s.mockRepo.SaveActiveState(s.ctx, encounters.SaveActiveStateInput{
			State: engine.State{ActiveIndex: -1, Round: 1},
		}))
	})

	s.Run("quota exceeded on save", func() {
		s.mockMedium.EXPECT().Set(s.ctx, encounters.ActiveStateKey, gomock.Any()).
			Return(errors.ResourceExhausted("quota exceeded"))

		err := s.mockRepo.SaveActiveState(s.ctx, encounters.SaveActiveStateInput{State: testutils.SampleState()})
		s.Require().Error(err)
		s.True(errors.IsResourceExhausted(err))
	})
}

func (s *RepositoryTestSuite) TestLoadActiveStateFailures() {
	cases := []struct {
		name  string
		setup func()
		check func(error) bool
	}{
		{
			name: "invalid JSON",
			setup: func() {
				s.mockMedium.EXPECT().Get(s.ctx, encounters.ActiveStateKey).Return("{not json", true, nil)
			},
			check: errors.IsDataLoss,
		},
		{
			name: "wrong shape",
			setup: func() {
				s.mockMedium.EXPECT().Get(s.ctx, encounters.ActiveStateKey).Return(`{"combatants":"goblin"}`, true, nil)
			},
			check: errors.IsDataLoss,
		},
		{
			name: "read error",
			setup: func() {
				s.mockMedium.EXPECT().Get(s.ctx, encounters.ActiveStateKey).Return("", false, stderror("disk gone"))
			},
			check: errors.IsInternal,
		},
		{
			name: "unavailable",
			setup: func() {
				s.mockMedium.EXPECT().Get(s.ctx, encounters.ActiveStateKey).Return("", false, errors.Unavailable("redis down"))
			},
			check: errors.IsUnavailable,
		},
		{
			name: "unreadable medium",
			setup: func() {
				s.mockMedium.EXPECT().Get(s.ctx, encounters.ActiveStateKey).Return("", false, errors.DataLoss("state file is not valid TOML"))
			},
			check: errors.IsDataLoss,
		},
		{
			name: "medium schema mismatch",
			setup: func() {
				s.mockMedium.EXPECT().Get(s.ctx, encounters.ActiveStateKey).Return("", false, errors.FailedPrecondition("state file version 9 is not supported"))
			},
			check: errors.IsFailedPrecondition,
		},
		{
			name: "panic",
			setup: func() {
				s.mockMedium.EXPECT().Get(s.ctx, encounters.ActiveStateKey).DoAndReturn(
					func(context.Context, string) (string, bool, error) {
						panic("boom")
					})
			},
			check: errors.IsInternal,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			tc.setup()
			out, err := s.mockRepo.LoadActiveState(s.ctx)
			s.Require().Error(err)
			s.Nil(out)
			s.True(tc.check(err), "unexpected code %s", errors.GetCode(err))
		})
	}

	s.Run("literal null is an empty slot", func() {
		s.mockMedium.EXPECT().Get(s.ctx, encounters.ActiveStateKey).Return("null", true, nil)
		out, err := s.mockRepo.LoadActiveState(s.ctx)
		s.Require().NoError(err)
		s.False(out.Found)
	})
}

func (s *RepositoryTestSuite) TestSavedRecords() {
	s.Run("empty list", func() {
		out, err := s.repo.LoadSavedRecords(s.ctx)
		s.Require().NoError(err)
		s.Empty(out.Records)
	})

	first := s.record("First")
	second := s.record("Second")

	s.Run("newest first", func() {
		_, err := s.repo.SaveRecord(s.ctx, encounters.SaveRecordInput{Record: first})
		s.Require().NoError(err)
		out, err := s.repo.SaveRecord(s.ctx, encounters.SaveRecordInput{Record: second})
		s.Require().NoError(err)
		s.Require().Len(out.Records, 2)
		s.Equal(second.ID, out.Records[0].ID)
		s.Equal(first.ID, out.Records[1].ID)
	})

	s.Run("resave replaces and moves to front", func() {
		updated := first
		updated.Name = "First again"
		updated.SavedAt = first.SavedAt.Add(time.Minute)

		out, err := s.repo.SaveRecord(s.ctx, encounters.SaveRecordInput{Record: updated})
		s.Require().NoError(err)
		s.Require().Len(out.Records, 2)
		s.Equal("First again", out.Records[0].Name)
		s.Equal(second.ID, out.Records[1].ID)

		loaded, err := s.repo.LoadSavedRecords(s.ctx)
		s.Require().NoError(err)
		s.Equal(out.Records, loaded.Records)
	})

	s.Run("get record", func() {
		out, err := s.repo.GetRecord(s.ctx, encounters.GetRecordInput{ID: second.ID})
		s.Require().NoError(err)
		s.Equal(second, out.Record)

		_, err = s.repo.GetRecord(s.ctx, encounters.GetRecordInput{ID: "missing"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("delete", func() {
		out, err := s.repo.DeleteRecord(s.ctx, encounters.DeleteRecordInput{ID: first.ID})
		s.Require().NoError(err)
		s.True(out.Deleted)
		s.Require().Len(out.Records, 1)
		s.Equal(second.ID, out.Records[0].ID)

		out, err = s.repo.DeleteRecord(s.ctx, encounters.DeleteRecordInput{ID: first.ID})
		s.Require().NoError(err)
		s.False(out.Deleted)
		s.Len(out.Records, 1)
	})

	s.Run("requires an id", func() {
		_, err := s.repo.SaveRecord(s.ctx, encounters.SaveRecordInput{})
		s.True(errors.IsInvalidArgument(err))
		_, err = s.repo.DeleteRecord(s.ctx, encounters.DeleteRecordInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RepositoryTestSuite) TestSaveRecordRestoresExactly() {
	state := testutils.SampleState()
	record := encounter.NewRecord(state, "Ambush", testutils.FixedTime, s.ids)
	_, err := s.repo.SaveRecord(s.ctx, encounters.SaveRecordInput{Record: record})
	s.Require().NoError(err)

	loaded, err := s.repo.LoadSavedRecords(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(loaded.Records, 1)

	restored := encounter.Restore(loaded.Records[0].Encounter)
	s.Equal(state.Combatants, restored.Combatants)
	s.Equal(state.ActiveIndex, restored.ActiveIndex)
	s.Equal(state.Round, restored.Round)
}

func (s *RepositoryTestSuite) TestSavedRecordsFailures() {
	s.Run("not a list", func() {
		s.mockMedium.EXPECT().Get(s.ctx, encounters.SavedRecordsKey).Return(`{"id":"x"}`, true, nil)
		_, err := s.mockRepo.LoadSavedRecords(s.ctx)
		s.Require().Error(err)
		s.True(errors.IsDataLoss(err))
		s.Contains(errors.GetMessage(err), "saved encounters must be a list")
	})

	s.Run("corrupt list is never overwritten", func() {
		s.mockMedium.EXPECT().Get(s.ctx, encounters.SavedRecordsKey).Return(`[{"id":1}]`, true, nil)
		// no Set expected
		_, err := s.mockRepo.SaveRecord(s.ctx, encounters.SaveRecordInput{Record: s.record("x")})
		s.Require().Error(err)
		s.True(errors.IsDataLoss(err))
	})

	s.Run("write failure", func() {
		s.mockMedium.EXPECT().Get(s.ctx, encounters.SavedRecordsKey).Return("", false, nil)
		s.mockMedium.EXPECT().Set(s.ctx, encounters.SavedRecordsKey, gomock.Any()).
			Return(errors.ResourceExhausted("quota exceeded"))

		_, err := s.mockRepo.SaveRecord(s.ctx, encounters.SaveRecordInput{Record: s.record("x")})
		s.Require().Error(err)
		s.True(errors.IsResourceExhausted(err))
	})

	s.Run("quota sized medium", func() {
		small, err := memory.New(&memory.Config{MaxValueBytes: 64})
		s.Require().NoError(err)
		repo, err := encounters.NewRepository(&encounters.Config{Medium: small})
		s.Require().NoError(err)

		_, err = repo.SaveRecord(s.ctx, encounters.SaveRecordInput{Record: s.record(strings.Repeat("x", 10))})
		s.Require().Error(err)
		s.True(errors.IsResourceExhausted(err))

		loaded, err := repo.LoadSavedRecords(s.ctx)
		s.Require().NoError(err)
		s.Empty(loaded.Records)
	})
}

type stderror string

func (e stderror) Error() string { return string(e) }
