package keys

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/gamechat/internal/tui/ui"
)

// Action represents a keybinding action.
type Action struct {
	Key         tcell.Key
	Rune        rune
	Label       string // key as shown in the menu, e.g. "1-5"
	Description string
	Handler     func()
	Visible     bool
	Numeric     bool
}

// Matches returns true if the event matches this action.
func (a *Action) Matches(ev *tcell.EventKey) bool {
	if a.Key != tcell.KeyRune {
		return ev.Key() == a.Key
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == a.Rune
}

type binding struct {
	name   string
	action *Action
}

// Registry holds keybindings organized by scope, in registration order.
type Registry struct {
	global []binding
	views  map[string][]binding
}

// NewRegistry creates a new keybinding registry.
func NewRegistry() *Registry {
	return &Registry{
		views: make(map[string][]binding),
	}
}

// AddGlobal registers a global keybinding. Re-using a name replaces it.
func (r *Registry) AddGlobal(name string, action *Action) {
	r.global = upsert(r.global, name, action)
}

// AddView registers a view-specific keybinding.
func (r *Registry) AddView(view, name string, action *Action) {
	r.views[view] = upsert(r.views[view], name, action)
}

func upsert(list []binding, name string, action *Action) []binding {
	for i := range list {
		if list[i].name == name {
			list[i].action = action
			return list
		}
	}
	return append(list, binding{name: name, action: action})
}

// Hints returns the visible bindings for a view, view-specific ones first.
func (r *Registry) Hints(view string) []ui.MenuHint {
	var hints []ui.MenuHint
	for _, list := range [][]binding{r.views[view], r.global} {
		for _, b := range list {
			if b.action.Visible {
				hints = append(hints, ui.MenuHint{
					Key:         b.action.Label,
					Description: b.action.Description,
					Numeric:     b.action.Numeric,
				})
			}
		}
	}
	return hints
}

// Global returns every global binding, visible or not. Adjacent bindings
// sharing a label, such as the numbered tab keys, collapse into one entry.
func (r *Registry) Global() []ui.MenuHint {
	return reference(r.global)
}

// View returns every binding registered for view.
func (r *Registry) View(view string) []ui.MenuHint {
	return reference(r.views[view])
}

func reference(list []binding) []ui.MenuHint {
	var hints []ui.MenuHint
	for _, b := range list {
		if n := len(hints); n > 0 && hints[n-1].Key == b.action.Label {
			continue
		}
		hints = append(hints, ui.MenuHint{
			Key:         b.action.Label,
			Description: b.action.Description,
			Numeric:     b.action.Numeric,
		})
	}
	return hints
}

// HandleEvent dispatches a key event to matching action in the given view.
// Returns true if a handler matched.
func (r *Registry) HandleEvent(view string, ev *tcell.EventKey) bool {
	// View-specific bindings win over global ones.
	for _, list := range [][]binding{r.views[view], r.global} {
		for _, b := range list {
			if b.action.Matches(ev) {
				b.action.Handler()
				return true
			}
		}
	}
	return false
}
