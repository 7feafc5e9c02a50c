package drag

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"rkanban/internal/application/session"
	"rkanban/internal/application/status"
	"rkanban/internal/application/usecase/board"
	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/repository/mocks"
	"rkanban/internal/domain/service"
	"rkanban/internal/domain/valueobject"
)

const token = "test-token"

type ControllerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	remote  *mocks.MockBoardRemote
	store   *service.BoardStore
	tracker *status.Tracker
	drag    *Controller
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.remote = mocks.NewMockBoardRemote(s.ctrl)
	s.store = service.NewBoardStore()
	s.tracker = status.NewTracker()
	sess := session.NewStaticSession(token)
	refresh := board.NewRefreshBoardUseCase(s.remote, s.store, sess, s.tracker)
	s.drag = NewController(s.store, s.remote, refresh, sess, s.tracker, time.Second)
	s.store.ReplaceBoard(s.board(map[string][]string{"L1": {"T1", "T2"}, "L2": {"T3"}}, "L1", "L2"))
}

func (s *ControllerSuite) task(id string) entity.Task {
	t, err := entity.NewTask(id, "task "+id, "", valueobject.DueDate{}, valueobject.PriorityLow, "")
	s.Require().NoError(err)
	return t
}

func (s *ControllerSuite) board(tasks map[string][]string, order ...string) *entity.Board {
	lists := make([]entity.List, 0, len(order))
	for _, id := range order {
		var ts []entity.Task
		for _, taskID := range tasks[id] {
			ts = append(ts, s.task(taskID))
		}
		l, err := entity.NewList(id, "list "+id, ts)
		s.Require().NoError(err)
		lists = append(lists, l)
	}
	b, err := entity.NewBoard(lists)
	s.Require().NoError(err)
	return b
}

func (s *ControllerSuite) ids(listID string) []string {
	l, ok := s.store.Snapshot().List(listID)
	s.Require().True(ok)
	var out []string
	for _, t := range l.Tasks() {
		out = append(out, t.ID())
	}
	return out
}

func (s *ControllerSuite) TestDropOnOtherListCommitsOnce() {
	s.Require().NoError(s.drag.Start("T1"))
	s.Equal(PhaseDragging, s.drag.State().Phase)

	s.remote.EXPECT().
		MoveTask(gomock.Any(), token, "T1", "L2").
		DoAndReturn(func(context.Context, string, string, string) (entity.Task, error) {
			s.True(s.tracker.Saving())
			s.Equal(PhaseCommitting, s.drag.State().Phase)
			return s.task("T1"), nil
		})

	res := s.drag.End(context.Background(), "L2")

	s.Equal(OutcomeCommitted, res.Outcome)
	s.Equal("L1", res.From)
	s.Equal("L2", res.To)
	s.Equal([]string{"T2"}, s.ids("L1"))
	s.Equal([]string{"T3", "T1"}, s.ids("L2"))
	s.Equal(PhaseIdle, s.drag.State().Phase)
	s.False(s.tracker.Saving())
}

func (s *ControllerSuite) TestDropOnTaskResolvesToItsList() {
	s.Require().NoError(s.drag.Start("T1"))
	s.remote.EXPECT().MoveTask(gomock.Any(), token, "T1", "L2").Return(s.task("T1"), nil)

	res := s.drag.End(context.Background(), "T3")

	s.Equal(OutcomeCommitted, res.Outcome)
	s.Equal([]string{"T3", "T1"}, s.ids("L2"))
}

func (s *ControllerSuite) TestOversAreLocalUntilDrop() {
	s.Require().NoError(s.drag.Start("T1"))

	s.True(s.drag.Over("L2"))
	s.Equal([]string{"T3", "T1"}, s.ids("L2"))
	s.True(s.drag.Over("T2"))
	s.Equal([]string{"T2", "T1"}, s.ids("L1"))
	s.True(s.drag.Over("L2"))
	s.False(s.drag.Over("L2"))
	s.False(s.drag.Over("nowhere"))

	s.remote.EXPECT().MoveTask(gomock.Any(), token, "T1", "L2").Return(s.task("T1"), nil).Times(1)
	res := s.drag.End(context.Background(), "L2")

	s.Equal(OutcomeCommitted, res.Outcome)
	s.Equal([]string{"T2"}, s.ids("L1"))
	s.Equal([]string{"T3", "T1"}, s.ids("L2"))
}

func (s *ControllerSuite) TestDropBackOnSourceRestoresSnapshot() {
	before := s.store.Snapshot()
	s.Require().NoError(s.drag.Start("T1"))
	s.drag.Over("L2")

	res := s.drag.End(context.Background(), "L1")

	s.Equal(OutcomeReverted, res.Outcome)
	s.Same(before, s.store.Snapshot())
	s.Equal([]string{"T1", "T2"}, s.ids("L1"))
}

func (s *ControllerSuite) TestDropWithoutMovingIsNoOp() {
	before := s.store.Snapshot()
	s.Require().NoError(s.drag.Start("T1"))

	res := s.drag.End(context.Background(), "T2")

	s.Equal(OutcomeNone, res.Outcome)
	s.Same(before, s.store.Snapshot())
	s.Equal(PhaseIdle, s.drag.State().Phase)
}

func (s *ControllerSuite) TestDropOutsideAnyTargetReverts() {
	before := s.store.Snapshot()
	s.Require().NoError(s.drag.Start("T1"))
	s.drag.Over("L2")

	res := s.drag.End(context.Background(), "")

	s.Equal(OutcomeReverted, res.Outcome)
	s.Same(before, s.store.Snapshot())
}

func (s *ControllerSuite) TestCancelRestoresSnapshot() {
	before := s.store.Snapshot()
	s.Require().NoError(s.drag.Start("T2"))
	s.drag.Over("L2")

	s.True(s.drag.Cancel())

	s.Same(before, s.store.Snapshot())
	s.Equal(PhaseIdle, s.drag.State().Phase)
	s.False(s.drag.Cancel())
}

func (s *ControllerSuite) TestCancelKeepsConcurrentChanges() {
	s.Require().NoError(s.drag.Start("T1"))
	s.drag.Over("L2")
	s.store.UpsertTask(s.task("T9"), "L1")

	s.True(s.drag.Cancel())

	s.Equal([]string{"T1", "T2", "T9"}, s.ids("L1"))
	s.Equal([]string{"T3"}, s.ids("L2"))
}

func (s *ControllerSuite) TestRejectedMoveReconcilesFromServer() {
	s.Require().NoError(s.drag.Start("T1"))
	s.drag.Over("L2")

	server := s.board(map[string][]string{"L1": {"T1", "T2"}, "L2": {"T3"}}, "L1", "L2")
	s.remote.EXPECT().MoveTask(gomock.Any(), token, "T1", "L2").
		Return(entity.Task{}, &entity.SyncFailure{Op: entity.OpMoveTask, EntityID: "T1", StatusCode: 500})
	s.remote.EXPECT().FetchBoard(gomock.Any(), token).Return(server, nil)

	res := s.drag.End(context.Background(), "L2")

	s.Equal(OutcomeReconciled, res.Outcome)
	sf, ok := entity.AsSyncFailure(res.Err)
	s.Require().True(ok)
	s.Equal(entity.OpMoveTask, sf.Op)
	s.Same(server, s.store.Snapshot())
	s.Equal([]string{"T1", "T2"}, s.ids("L1"))

	notice, ok := s.tracker.Latest()
	s.Require().True(ok)
	s.Equal(entity.OpMoveTask, notice.Op)
	s.Equal(status.LevelError, notice.Level)
}

func (s *ControllerSuite) TestReconcileFailureRevertsMove() {
	s.Require().NoError(s.drag.Start("T1"))

	moveErr := errors.New("connection reset")
	s.remote.EXPECT().MoveTask(gomock.Any(), token, "T1", "L2").Return(entity.Task{}, moveErr)
	s.remote.EXPECT().FetchBoard(gomock.Any(), token).Return(nil, errors.New("server unreachable"))

	res := s.drag.End(context.Background(), "L2")

	s.Equal(OutcomeReconciled, res.Outcome)
	s.ErrorIs(res.Err, moveErr)
	s.Equal([]string{"T1", "T2"}, s.ids("L1"))
	s.Equal([]string{"T3"}, s.ids("L2"))
	s.Len(s.tracker.Notices(), 2)
}

func (s *ControllerSuite) TestServerCanonicalTaskIsApplied() {
	s.Require().NoError(s.drag.Start("T1"))
	canonical, err := entity.NewTask("T1", "renamed on server", "", valueobject.DueDate{}, valueobject.PriorityHigh, "L2")
	s.Require().NoError(err)
	s.remote.EXPECT().MoveTask(gomock.Any(), token, "T1", "L2").Return(canonical, nil)

	s.drag.End(context.Background(), "L2")

	task, listID, ok := s.store.Snapshot().FindTask("T1")
	s.Require().True(ok)
	s.Equal("L2", listID)
	s.Equal("renamed on server", task.Title())
}

func (s *ControllerSuite) TestStartGuards() {
	s.ErrorIs(s.drag.Start("missing"), entity.ErrTaskNotFound)
	s.Equal(PhaseIdle, s.drag.State().Phase)

	s.Require().NoError(s.drag.Start("T1"))
	s.ErrorIs(s.drag.Start("T2"), entity.ErrDragInProgress)
}

func (s *ControllerSuite) TestStartWhileCommittingIsRejected() {
	s.Require().NoError(s.drag.Start("T1"))

	s.remote.EXPECT().MoveTask(gomock.Any(), token, "T1", "L2").
		DoAndReturn(func(context.Context, string, string, string) (entity.Task, error) {
			s.ErrorIs(s.drag.Start("T2"), entity.ErrSaving)
			return s.task("T1"), nil
		})

	s.drag.End(context.Background(), "L2")
	s.NoError(s.drag.Start("T2"))
}

func (s *ControllerSuite) TestStartWhileOtherChangeSavingIsRejected() {
	end := s.tracker.Begin(entity.OpUpdateTask)

	s.ErrorIs(s.drag.Start("T1"), entity.ErrSaving)
	s.Equal(PhaseIdle, s.drag.State().Phase)

	end()
	s.NoError(s.drag.Start("T1"))
	s.Equal(PhaseDragging, s.drag.State().Phase)
}

func (s *ControllerSuite) TestEndWithoutDrag() {
	res := s.drag.End(context.Background(), "L2")
	s.Equal(OutcomeNone, res.Outcome)
	s.ErrorIs(res.Err, entity.ErrNoActiveDrag)
}

func (s *ControllerSuite) TestCommitTimeout() {
	sess := session.NewStaticSession(token)
	refresh := board.NewRefreshBoardUseCase(s.remote, s.store, sess, s.tracker)
	s.drag = NewController(s.store, s.remote, refresh, sess, s.tracker, 10*time.Millisecond)
	s.Require().NoError(s.drag.Start("T1"))

	s.remote.EXPECT().MoveTask(gomock.Any(), token, "T1", "L2").
		DoAndReturn(func(ctx context.Context, _, _, _ string) (entity.Task, error) {
			<-ctx.Done()
			return entity.Task{}, &entity.SyncFailure{Op: entity.OpMoveTask, Err: ctx.Err()}
		})
	s.remote.EXPECT().FetchBoard(gomock.Any(), token).
		Return(s.board(map[string][]string{"L1": {"T1", "T2"}, "L2": {"T3"}}, "L1", "L2"), nil)

	res := s.drag.End(context.Background(), "L2")

	s.Equal(OutcomeReconciled, res.Outcome)
	s.ErrorIs(res.Err, context.DeadlineExceeded)
}

func TestResolveDestination(t *testing.T) {
	t1, err := entity.NewTask("T1", "one", "", valueobject.DueDate{}, valueobject.PriorityLow, "")
	require.NoError(t, err)
	l1, err := entity.NewList("L1", "todo", []entity.Task{t1})
	require.NoError(t, err)
	l2, err := entity.NewList("L2", "done", nil)
	require.NoError(t, err)
	b, err := entity.NewBoard([]entity.List{l1, l2})
	require.NoError(t, err)

	tests := []struct {
		over string
		want string
		ok   bool
	}{
		{over: "L2", want: "L2", ok: true},
		{over: "T1", want: "L1", ok: true},
		{over: "T404", ok: false},
		{over: "", ok: false},
	}
	for _, tt := range tests {
		got, ok := ResolveDestination(b, tt.over)
		require.Equal(t, tt.ok, ok, tt.over)
		require.Equal(t, tt.want, got, tt.over)
	}
}
