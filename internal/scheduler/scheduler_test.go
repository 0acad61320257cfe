package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/pr-poehali-dev/loft-massage-site/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_SendsDigest(t *testing.T) {
	digester := mocks.NewMockBookingDigester(t)
	log := newTestLogger(t)

	s := New(digester, 50*time.Millisecond, log)

	digester.EXPECT().DailyDigest(mock.Anything).Return(3, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(digester.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	digester := mocks.NewMockBookingDigester(t)
	log := newTestLogger(t)

	s := New(digester, 50*time.Millisecond, log)

	digester.EXPECT().DailyDigest(mock.Anything).Return(0, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(digester.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	digester := mocks.NewMockBookingDigester(t)
	log := newTestLogger(t)

	s := New(digester, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	digester := mocks.NewMockBookingDigester(t)
	log := newTestLogger(t)

	s := New(digester, 30*time.Millisecond, log)

	digester.EXPECT().DailyDigest(mock.Anything).Return(0, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(digester.Calls), 3)
}
