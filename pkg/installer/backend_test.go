// SPDX-License-Identifier: Apache-2.0
package installer

import (
	"context"
	"testing"
	"time"
)

func TestSimulatedBackend_EventSequence(t *testing.T) {
	backend := SimulatedBackend{Delay: time.Millisecond}
	steps := Steps(ModeNewInstall)

	events := backend.Execute(context.Background(), NewSettings().Clone(), steps)

	var got []StepEvent
	for ev := range events {
		got = append(got, ev)
	}

	// Two events per step: started then completed
	if len(got) != 2*len(steps) {
		t.Fatalf("expected %d events, got %d", 2*len(steps), len(got))
	}
	for i, step := range steps {
		started := got[2*i]
		completed := got[2*i+1]
		if started.StepIndex != i || started.Status != StepStarted {
			t.Errorf("event %d: expected step %d started, got %+v", 2*i, i, started)
		}
		if completed.StepIndex != i || completed.Status != StepCompleted {
			t.Errorf("event %d: expected step %d completed, got %+v", 2*i+1, i, completed)
		}
		if started.Log != "Starting: "+step {
			t.Errorf("step %d start log = %q", i, started.Log)
		}
		if completed.Log != "Completed: "+step {
			t.Errorf("step %d complete log = %q", i, completed.Log)
		}
	}
}

func TestSimulatedBackend_CancelStopsStream(t *testing.T) {
	backend := SimulatedBackend{Delay: time.Hour} // would never finish on its own
	ctx, cancel := context.WithCancel(context.Background())

	events := backend.Execute(ctx, NewSettings().Clone(), Steps(ModeNewInstall))

	// First event arrives before the long pause
	select {
	case ev := <-events:
		if ev.Status != StepStarted || ev.StepIndex != 0 {
			t.Fatalf("unexpected first event %+v", ev)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for first event")
	}

	cancel()

	select {
	case _, open := <-events:
		if open {
			t.Error("expected channel to close after cancel")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("channel did not close after cancel")
	}
}
