// Package state owns the mutable UI state: the active tab, the search text,
// the selected chat and the premium plan. Every change goes through a setter
// and is announced on the bus.
package state

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/matheus3301/gamechat/internal/bus"
	"github.com/matheus3301/gamechat/internal/dataset"
)

var (
	// ErrUnknownChat is returned when selecting an id that no chat has.
	ErrUnknownChat = errors.New("unknown chat")
	// ErrPremiumDisabled is returned when the premium feature is switched off.
	ErrPremiumDisabled = errors.New("premium is disabled")
)

// ChatLookup resolves chat ids; *dataset.Dataset implements it.
type ChatLookup interface {
	ChatByID(id int) (dataset.Chat, bool)
}

// Options configures a new AppState.
type Options struct {
	PremiumEnabled bool
	InitialTab     Tab
	// InitialChat is preselected when it exists; zero means no selection.
	InitialChat int
}

// Snapshot is an immutable copy of AppState used for rendering.
type Snapshot struct {
	ActiveTab      Tab
	Tabs           []Tab
	SearchQuery    string
	SelectedChatID int
	ChatSelected   bool
	PremiumEnabled bool
	Premium        bool
}

// SelectedChat returns the selected chat id, if any.
func (s Snapshot) SelectedChat() (int, bool) {
	return s.SelectedChatID, s.ChatSelected
}

// AppState is the single owner of mutable UI state.
type AppState struct {
	mu          sync.RWMutex
	tabs        []Tab
	activeTab   Tab
	searchQuery string
	selectedID  int
	hasSelected bool

	chats ChatLookup
	plan  *PlanMachine // nil when premium is disabled
	bus   *bus.Bus
}

// New creates the UI state. It fails if the initial tab is not enabled.
func New(opts Options, chats ChatLookup, b *bus.Bus) (*AppState, error) {
	s := &AppState{
		tabs:      Tabs(opts.PremiumEnabled),
		activeTab: Chats,
		chats:     chats,
		bus:       b,
	}
	if opts.PremiumEnabled {
		s.plan = NewPlanMachine(b)
	}
	if opts.InitialTab != "" {
		if err := s.checkTab(opts.InitialTab); err != nil {
			return nil, fmt.Errorf("initial tab: %w", err)
		}
		s.activeTab = opts.InitialTab
	}
	if opts.InitialChat != 0 {
		if _, ok := chats.ChatByID(opts.InitialChat); ok {
			s.selectedID, s.hasSelected = opts.InitialChat, true
		}
	}
	return s, nil
}

func (s *AppState) checkTab(t Tab) error {
	if _, err := ParseTab(string(t)); err != nil {
		return err
	}
	if !slices.Contains(s.tabs, t) {
		return fmt.Errorf("%w: %s", ErrTabUnavailable, t)
	}
	return nil
}

// Snapshot returns a copy of the current state.
func (s *AppState) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{
		ActiveTab:      s.activeTab,
		Tabs:           slices.Clone(s.tabs),
		SearchQuery:    s.searchQuery,
		SelectedChatID: s.selectedID,
		ChatSelected:   s.hasSelected,
		PremiumEnabled: s.plan != nil,
	}
	if s.plan != nil {
		snap.Premium = s.plan.Current() == PremiumPlan
	}
	return snap
}

// ActiveTab returns the active tab.
func (s *AppState) ActiveTab() Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeTab
}

// SetActiveTab switches the visible panel.
func (s *AppState) SetActiveTab(t Tab) error {
	s.mu.Lock()
	if err := s.checkTab(t); err != nil {
		s.mu.Unlock()
		return err
	}
	s.activeTab = t
	s.mu.Unlock()
	s.publish(bus.TabChanged, t)
	return nil
}

// NextTab activates the tab after the current one, wrapping around.
func (s *AppState) NextTab() Tab { return s.shiftTab(1) }

// PrevTab activates the tab before the current one, wrapping around.
func (s *AppState) PrevTab() Tab { return s.shiftTab(-1) }

func (s *AppState) shiftTab(delta int) Tab {
	s.mu.Lock()
	i := slices.Index(s.tabs, s.activeTab)
	n := len(s.tabs)
	s.activeTab = s.tabs[((i+delta)%n+n)%n]
	t := s.activeTab
	s.mu.Unlock()
	s.publish(bus.TabChanged, t)
	return t
}

// SearchQuery returns the current search text.
func (s *AppState) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchQuery
}

// SetSearchQuery stores the search text as typed.
func (s *AppState) SetSearchQuery(q string) {
	s.mu.Lock()
	changed := s.searchQuery != q
	s.searchQuery = q
	s.mu.Unlock()
	if changed {
		s.publish(bus.SearchChanged, q)
	}
}

// SelectedChat returns the selected chat id, if any.
func (s *AppState) SelectedChat() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedID, s.hasSelected
}

// SetSelectedChat selects the chat with the given id. Unknown ids are
// rejected and leave the previous selection in place.
func (s *AppState) SetSelectedChat(id int) error {
	if _, ok := s.chats.ChatByID(id); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownChat, id)
	}
	s.mu.Lock()
	s.selectedID, s.hasSelected = id, true
	s.mu.Unlock()
	s.publish(bus.ChatSelected, id)
	return nil
}

// IsPremium reports whether the premium plan is active.
func (s *AppState) IsPremium() bool {
	if s.plan == nil {
		return false
	}
	return s.plan.Current() == PremiumPlan
}

// SetPremium moves the plan. Only false -> true is possible; repeating the
// current value is a no-op.
func (s *AppState) SetPremium(on bool) error {
	if s.plan == nil {
		return ErrPremiumDisabled
	}
	to := Free
	if on {
		to = PremiumPlan
	}
	return s.plan.Transition(to)
}

func (s *AppState) publish(kind string, payload any) {
	if s.bus != nil {
		s.bus.Publish(bus.NewEvent(kind, payload))
	}
}
