package state

import (
	"fmt"
	"slices"
	"sync"

	"github.com/matheus3301/gamechat/internal/bus"
)

// Plan is the subscription state of the local player.
type Plan string

const (
	Free        Plan = "FREE"
	PremiumPlan Plan = "PREMIUM"
)

// validTransitions defines allowed plan changes. There is no way back to Free.
var validTransitions = map[Plan][]Plan{
	Free:        {PremiumPlan},
	PremiumPlan: {},
}

// TransitionError is returned for a plan change the machine does not allow.
type TransitionError struct {
	From Plan
	To   Plan
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid plan transition from %s to %s", e.From, e.To)
}

// PlanChange is the payload for premium change events.
type PlanChange struct {
	From Plan
	To   Plan
}

// PlanMachine tracks and enforces plan transitions.
type PlanMachine struct {
	mu      sync.RWMutex
	current Plan
	bus     *bus.Bus
}

// NewPlanMachine creates a machine starting on the Free plan.
func NewPlanMachine(b *bus.Bus) *PlanMachine {
	return &PlanMachine{
		current: Free,
		bus:     b,
	}
}

// Current returns the current plan.
func (m *PlanMachine) Current() Plan {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Transition moves to plan to. Moving to the current plan is a no-op.
func (m *PlanMachine) Transition(to Plan) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if to == m.current {
		return nil
	}
	if !slices.Contains(validTransitions[m.current], to) {
		return &TransitionError{From: m.current, To: to}
	}
	from := m.current
	m.current = to
	if m.bus != nil {
		m.bus.Publish(bus.NewEvent(bus.PremiumChanged, PlanChange{From: from, To: to}))
	}
	return nil
}
