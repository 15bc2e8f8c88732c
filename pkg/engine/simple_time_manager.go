package engine

import (
	"context"
	"time"
)

type simpleTimeManager struct {
	start     time.Time
	limits    LimitsType
	softLimit time.Duration
	cancel    context.CancelFunc
}

func newSimpleTimeManager(ctx context.Context, start time.Time,
	limits LimitsType) (context.Context, *simpleTimeManager) {

	var tm = &simpleTimeManager{
		start:  start,
		limits: limits,
	}

	var hardLimit time.Duration
	if limits.MoveTime > 0 {
		hardLimit = time.Duration(limits.MoveTime) * time.Millisecond
		// the next iteration usually costs more than all previous ones
		tm.softLimit = hardLimit / 2
	}

	var cancel context.CancelFunc
	if hardLimit != 0 {
		ctx, cancel = context.WithDeadline(ctx, start.Add(hardLimit))
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	tm.cancel = cancel
	return ctx, tm
}

// IsDone reports whether a new iteration should not be started.
func (tm *simpleTimeManager) IsDone(nodes int64) bool {
	if tm.limits.Nodes > 0 && nodes >= tm.limits.Nodes {
		return true
	}
	return tm.softLimit != 0 && time.Since(tm.start) >= tm.softLimit
}

func (tm *simpleTimeManager) Close() {
	tm.cancel()
}
