// SPDX-License-Identifier: Apache-2.0
package installer

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// StepStatus classifies a backend progress event.
type StepStatus int

const (
	StepStarted StepStatus = iota
	StepCompleted
	StepFailed
)

// StepEvent is one progress report from the installation backend. The
// wizard treats the event stream as the single source of truth for install
// progress; the install screen never advances without one.
type StepEvent struct {
	StepIndex int
	Log       string
	Status    StepStatus
	Err       string
}

// Backend executes an installation plan. Execute returns immediately with
// an event channel; the implementation closes the channel after the final
// event (last step completed, a step failed, or the context was canceled).
// The snapshot is a value copy so later operator edits cannot race a run.
type Backend interface {
	Execute(ctx context.Context, snapshot Settings, steps []string) <-chan StepEvent
}

// SimulatedBackend walks the step list with a fixed pause per step and
// reports success for every one. It stands in for the real partitioning /
// pool-creation / bootloader work, which stays behind the Backend interface.
type SimulatedBackend struct {
	Delay time.Duration
}

// Execute implements Backend.
func (b SimulatedBackend) Execute(ctx context.Context, snapshot Settings, steps []string) <-chan StepEvent {
	events := make(chan StepEvent)

	go func() {
		defer close(events)
		log.Infof("backend: simulating %d step(s) for pool %s", len(steps), snapshot.PoolName)

		for i, step := range steps {
			if !b.emit(ctx, events, StepEvent{
				StepIndex: i,
				Status:    StepStarted,
				Log:       fmt.Sprintf("Starting: %s", step),
			}) {
				return
			}
			if !b.pause(ctx) {
				return
			}
			if !b.emit(ctx, events, StepEvent{
				StepIndex: i,
				Status:    StepCompleted,
				Log:       fmt.Sprintf("Completed: %s", step),
			}) {
				return
			}
		}
	}()

	return events
}

func (b SimulatedBackend) emit(ctx context.Context, events chan<- StepEvent, ev StepEvent) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		log.Debug("backend: canceled, stopping event stream")
		return false
	}
}

func (b SimulatedBackend) pause(ctx context.Context) bool {
	delay := b.Delay
	if delay <= 0 {
		delay = 400 * time.Millisecond
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
