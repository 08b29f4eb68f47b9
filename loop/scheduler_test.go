package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

type CountingSystem struct {
	ExecuteCount int
	TotalTime    float64
}

func (s *CountingSystem) Execute(frame *loop.UpdateFrame) {
	s.ExecuteCount++
	s.TotalTime += frame.DeltaTime
}

type GravitySystem struct {
	Game *tetris.Game
}

func (s *GravitySystem) Execute(frame *loop.UpdateFrame) {
	s.Game.Tick(frame.Elapsed())
}

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		scheduler := loop.NewScheduler(nil)

		var order []string
		scheduler.Register(loop.SystemFunc(func(*loop.UpdateFrame) { order = append(order, "first") }))
		scheduler.Register(loop.SystemFunc(func(*loop.UpdateFrame) { order = append(order, "second") }))

		scheduler.Once(1.0)
		scheduler.Once(1.0)

		if len(order) != 4 || order[0] != "first" || order[1] != "second" {
			t.Errorf("unexpected execution order %v", order)
		}
	})

	t.Run("custom state persistence", func(t *testing.T) {
		scheduler := loop.NewScheduler(nil)
		counter := &CountingSystem{}
		scheduler.Register(counter)

		scheduler.Once(0.25)
		scheduler.Once(0.5)

		if counter.ExecuteCount != 2 {
			t.Errorf("expected CountingSystem to execute twice, got %d", counter.ExecuteCount)
		}
		if counter.TotalTime != 0.75 {
			t.Errorf("expected TotalTime=0.75, got %f", counter.TotalTime)
		}
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := loop.NewScheduler(nil)
		counter := &CountingSystem{}
		scheduler.Register(counter)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		if counter.ExecuteCount == 0 {
			t.Error("expected system to execute at least once")
		}
	})

	t.Run("deferred commands run after all systems", func(t *testing.T) {
		scheduler := loop.NewScheduler(nil)

		var order []string
		scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
			frame.Commands.Defer(func() { order = append(order, "deferred") })
		}))
		scheduler.Register(loop.SystemFunc(func(*loop.UpdateFrame) { order = append(order, "system") }))

		scheduler.Once(1.0)

		assert.Equal(t, []string{"system", "deferred"}, order)
	})

	t.Run("nil system", func(t *testing.T) {
		assert.Panics(t, func() { loop.NewScheduler(nil).Register(nil) })
	})
}

func TestSchedulerFrameDrivesGame(t *testing.T) {
	clock := &manualClock{now: time.Unix(0, 0)}
	scheduler := loop.NewScheduler(loop.NewClock(clock.Now))

	game := tetris.NewGame(tetris.WithRandom(tetris.NewRandom(1)))
	game.Start()
	scheduler.Register(&GravitySystem{Game: game})

	scheduler.Frame()
	assert.Equal(t, 0, game.Position().Y)

	clock.advance(600 * time.Millisecond)
	scheduler.Frame()
	clock.advance(600 * time.Millisecond)
	scheduler.Frame()
	assert.Equal(t, 1, game.Position().Y)
}

func TestSchedulerCancelDropsPendingFrame(t *testing.T) {
	clock := &manualClock{now: time.Unix(0, 0)}
	scheduler := loop.NewScheduler(loop.NewClock(clock.Now))
	counter := &CountingSystem{}
	scheduler.Register(counter)

	scheduler.Frame()
	clock.advance(time.Second)
	scheduler.Cancel()
	scheduler.Frame()

	assert.Equal(t, 2, counter.ExecuteCount)
	assert.Zero(t, counter.TotalTime)

	clock.advance(time.Second)
	scheduler.Frame()
	assert.Equal(t, 1.0, counter.TotalTime)
}

func TestSchedulerStats(t *testing.T) {
	scheduler := loop.NewScheduler(nil)
	scheduler.Register(&CountingSystem{})
	scheduler.Register(loop.SystemFunc(func(*loop.UpdateFrame) { time.Sleep(time.Millisecond) }))

	stats := scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Zero(t, stats.Systems[0].MinDuration)

	for range 3 {
		scheduler.Once(0.016)
	}

	stats = scheduler.GetStats()
	assert.Equal(t, int64(3), stats.Frames)
	assert.Equal(t, int64(6), stats.TotalExecutions)
	assert.Equal(t, "CountingSystem", stats.Systems[0].Name)
	assert.Equal(t, "SystemFunc", stats.Systems[1].Name)
	assert.GreaterOrEqual(t, stats.Systems[1].MinDuration, time.Millisecond)
	assert.LessOrEqual(t, stats.Systems[1].MinDuration, stats.Systems[1].AvgDuration)
	assert.LessOrEqual(t, stats.Systems[1].AvgDuration, stats.Systems[1].MaxDuration)
}

func TestClock(t *testing.T) {
	clock := &manualClock{now: time.Unix(100, 0)}
	c := loop.NewClock(clock.Now)

	assert.Zero(t, c.Delta())
	clock.advance(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, c.Delta())

	clock.advance(-time.Second)
	assert.Zero(t, c.Delta(), "time going backwards measures zero")

	c.Reset()
	clock.advance(time.Hour)
	assert.Zero(t, c.Delta())
}

func TestCommandsFlush(t *testing.T) {
	var c loop.Commands
	calls := 0
	c.Defer(func() {
		calls++
		c.Defer(func() { calls++ })
	})
	c.Defer(nil)
	assert.Equal(t, 1, c.Len())

	c.Flush()

	assert.Equal(t, 2, calls)
	assert.Zero(t, c.Len())
}
