package jobs_test

import (
	"context"
	"errors"
	"testing"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type MockCountHandler struct {
	mock.Mock
}

func (m *MockCountHandler) Handle(
	ctx context.Context,
	query queries.CountOrdersByStatusQuery,
) (map[order.Status]int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[order.Status]int64), args.Error(1)
}

func TestOrderStatsJob_Run_LogsActiveCounts(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := &MockCountHandler{}
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.CountOrdersByStatusQuery) bool {
		for _, s := range q.Statuses() {
			if s.IsTerminal() {
				return false
			}
		}
		return len(q.Statuses()) == 8
	})).Return(map[order.Status]int64{order.New: 3, order.InDelivery: 2}, nil)

	jobs.NewOrderStatsJob(handler, "", zap.New(core)).Run(context.Background())

	entries := logs.FilterMessage("Active orders by status").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(3), fields["NEW"])
	assert.Equal(t, int64(2), fields["IN_DELIVERY"])
	assert.Equal(t, int64(0), fields["READY"])
	assert.Equal(t, int64(5), fields["active_total"])
	assert.NotContains(t, fields, "DELIVERED")
	handler.AssertExpectations(t)
}

func TestOrderStatsJob_Run_LogsFailure(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := &MockCountHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	jobs.NewOrderStatsJob(handler, "", zap.New(core)).Run(context.Background())

	assert.Equal(t, 1, logs.FilterMessage("Order stats job failed").Len())
	assert.Zero(t, logs.FilterMessage("Active orders by status").Len())
}

func TestOrderStatsJob_StartRejectsBadSchedule(t *testing.T) {
	job := jobs.NewOrderStatsJob(&MockCountHandler{}, "every now and then", zap.NewNop())

	require.Error(t, job.Start())
}

type fakeJob struct {
	name   string
	err    error
	events *[]string
}

func (j fakeJob) Start() error {
	*j.events = append(*j.events, "start "+j.name)
	return j.err
}

func (j fakeJob) Stop() {
	*j.events = append(*j.events, "stop "+j.name)
}

func TestJobManager(t *testing.T) {
	t.Run("stops in reverse order", func(t *testing.T) {
		var events []string
		manager := jobs.NewJobManager(fakeJob{name: "a", events: &events}, fakeJob{name: "b", events: &events})

		require.NoError(t, manager.StartAll())
		manager.StopAll()

		assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, events)
	})

	t.Run("failed start stops the started jobs", func(t *testing.T) {
		var events []string
		manager := jobs.NewJobManager(
			fakeJob{name: "a", events: &events},
			fakeJob{name: "b", err: errors.New("bad schedule"), events: &events},
		)

		require.Error(t, manager.StartAll())

		assert.Equal(t, []string{"start a", "start b", "stop a"}, events)
	})
}
