package activity

import (
	"context"
	"testing"
	"time"

	"github.com/matheus3301/gamechat/internal/bus"
	"github.com/matheus3301/gamechat/internal/state"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newRecorder(t *testing.T) (*Recorder, *bus.Bus, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	b := bus.New()
	r := NewRecorder(b, zap.New(core))
	r.Start(context.Background())
	t.Cleanup(r.Stop)
	return r, b, logs
}

// waitForLogs polls until n entries have been observed.
func waitForLogs(t *testing.T, logs *observer.ObservedLogs, n int) []observer.LoggedEntry {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if logs.Len() >= n {
			return logs.All()
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("observed %d log entries, want %d", logs.Len(), n)
	return nil
}

func TestRecorderLogsStateChanges(t *testing.T) {
	r, b, logs := newRecorder(t)

	b.Publish(bus.NewEvent(bus.TabChanged, state.Profile))
	b.Publish(bus.NewEvent(bus.ChatSelected, 3))
	b.Publish(bus.NewEvent(bus.PremiumChanged, state.PlanChange{From: state.Free, To: state.PremiumPlan}))
	b.Publish(bus.NewEvent(bus.SearchChanged, "рейд"))

	entries := waitForLogs(t, logs, 4)

	wantMsgs := []string{"tab changed", "chat selected", "plan changed", "search changed"}
	for i, want := range wantMsgs {
		if entries[i].Message != want {
			t.Errorf("entry %d message = %q, want %q", i, entries[i].Message, want)
		}
	}
	if got := entries[0].ContextMap()["tab"]; got != "profile" {
		t.Errorf("tab field = %v, want profile", got)
	}
	if got := entries[2].ContextMap()["to"]; got != "PREMIUM" {
		t.Errorf("to field = %v, want PREMIUM", got)
	}
	if got := entries[3].ContextMap()["length"]; got != int64(4) {
		t.Errorf("length field = %v, want 4 runes", got)
	}
	if r.Count(bus.TabChanged) != 1 {
		t.Errorf("Count(tab) = %d, want 1", r.Count(bus.TabChanged))
	}
}

func TestRecorderWithState(t *testing.T) {
	_, b, logs := newRecorder(t)

	s, err := state.New(state.Options{PremiumEnabled: true}, nopChats{}, b)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetPremium(true); err != nil {
		t.Fatal(err)
	}

	entries := waitForLogs(t, logs, 1)
	if entries[0].Message != "plan changed" {
		t.Errorf("message = %q, want plan changed", entries[0].Message)
	}
}

func TestRecorderBadPayload(t *testing.T) {
	_, b, logs := newRecorder(t)

	b.Publish(bus.NewEvent(bus.PremiumChanged, "oops"))

	entries := waitForLogs(t, logs, 1)
	if entries[0].Level != zapcore.WarnLevel {
		t.Errorf("level = %v, want warn", entries[0].Level)
	}
}

func TestRecorderStopLogsSummary(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	b := bus.New()
	r := NewRecorder(b, zap.New(core))
	r.Start(context.Background())

	b.Publish(bus.NewEvent(bus.TabChanged, state.Contacts))
	b.Publish(bus.NewEvent(bus.TabChanged, state.Chats))
	b.Publish(bus.NewEvent(bus.ChatSelected, 2))
	waitForLogs(t, logs, 3)

	r.Stop()
	r.Stop()

	summary := logs.FilterMessage("activity summary").All()
	if len(summary) != 1 {
		t.Fatalf("got %d summary entries, want 1", len(summary))
	}
	fields := summary[0].ContextMap()
	tests := []struct {
		key  string
		want int64
	}{
		{"tab_changes", 2},
		{"chat_selections", 1},
		{"searches", 0},
		{"plan_changes", 0},
	}
	for _, tt := range tests {
		if got := fields[tt.key]; got != tt.want {
			t.Errorf("%s = %v, want %d", tt.key, got, tt.want)
		}
	}
}

func TestRecorderStopIsIdempotentBeforeStart(t *testing.T) {
	r := NewRecorder(bus.New(), zap.NewNop())
	r.Stop()
}
