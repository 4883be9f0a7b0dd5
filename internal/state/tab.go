package state

import (
	"errors"
	"fmt"
	"slices"
)

// Tab is one of the mutually exclusive top-level views.
type Tab string

const (
	Chats    Tab = "chats"
	Contacts Tab = "contacts"
	Profile  Tab = "profile"
	Settings Tab = "settings"
	Premium  Tab = "premium"
)

var allTabs = []Tab{Chats, Contacts, Profile, Settings, Premium}

var (
	// ErrUnknownTab is returned for a tab name outside the enumerated set.
	ErrUnknownTab = errors.New("unknown tab")
	// ErrTabUnavailable is returned for a known tab that is switched off.
	ErrTabUnavailable = errors.New("tab not available")
)

// ParseTab converts a tab name into a Tab.
func ParseTab(s string) (Tab, error) {
	t := Tab(s)
	if !slices.Contains(allTabs, t) {
		return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
	}
	return t, nil
}

// Tabs returns the tabs shown for the given feature set, in display order.
func Tabs(premiumEnabled bool) []Tab {
	if premiumEnabled {
		return slices.Clone(allTabs)
	}
	return slices.Clone(allTabs[:len(allTabs)-1])
}

// Label is the tab caption.
func (t Tab) Label() string {
	switch t {
	case Chats:
		return "Чаты"
	case Contacts:
		return "Контакты"
	case Profile:
		return "Профиль"
	case Settings:
		return "Настройки"
	case Premium:
		return "Premium"
	default:
		return string(t)
	}
}
