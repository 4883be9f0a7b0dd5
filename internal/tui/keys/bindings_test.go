package keys

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/gamechat/internal/tui/ui"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHandleEventPrefersView(t *testing.T) {
	r := NewRegistry()
	var hit string
	r.AddGlobal("quit", &Action{Key: tcell.KeyRune, Rune: 'q', Handler: func() { hit = "global" }})
	r.AddView("premium", "quit", &Action{Key: tcell.KeyRune, Rune: 'q', Handler: func() { hit = "view" }})

	if !r.HandleEvent("premium", runeKey('q')) || hit != "view" {
		t.Errorf("premium view: hit = %q, want view", hit)
	}
	if !r.HandleEvent("chats", runeKey('q')) || hit != "global" {
		t.Errorf("chats view: hit = %q, want global", hit)
	}
	if r.HandleEvent("chats", runeKey('x')) {
		t.Error("unbound key reported as handled")
	}
}

func TestHandleEventSpecialKeys(t *testing.T) {
	r := NewRegistry()
	fired := 0
	r.AddGlobal("next", &Action{Key: tcell.KeyTab, Handler: func() { fired++ }})

	if !r.HandleEvent("chats", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)) {
		t.Error("Tab not handled")
	}
	if r.HandleEvent("chats", runeKey('t')) {
		t.Error("rune event matched a special key")
	}
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestHintsOrder(t *testing.T) {
	r := NewRegistry()
	nop := func() {}
	r.AddGlobal("tabs", &Action{Label: "1-5", Description: "Tab", Visible: true, Numeric: true, Handler: nop})
	r.AddGlobal("search", &Action{Label: "/", Description: "Search", Visible: true, Handler: nop})
	r.AddGlobal("hidden", &Action{Label: "x", Description: "Hidden", Handler: nop})
	r.AddView("premium", "upgrade", &Action{Label: "u", Description: "Upgrade", Visible: true, Handler: nop})
	r.AddGlobal("search", &Action{Label: "/", Description: "Find", Visible: true, Handler: nop})

	hints := r.Hints("premium")
	want := []string{"Upgrade", "Tab", "Find"}
	if len(hints) != len(want) {
		t.Fatalf("got %d hints, want %d: %+v", len(hints), len(want), hints)
	}
	for i, w := range want {
		if hints[i].Description != w {
			t.Errorf("hint %d = %q, want %q", i, hints[i].Description, w)
		}
	}
	if !hints[1].Numeric {
		t.Error("numeric flag lost")
	}
	if n := len(r.Hints("chats")); n != 2 {
		t.Errorf("chats hints = %d, want 2", n)
	}
}

func TestReferenceListsHiddenBindings(t *testing.T) {
	r := NewRegistry()
	nop := func() {}
	for _, k := range "1234" {
		r.AddGlobal("tab-"+string(k), &Action{
			Key: tcell.KeyRune, Rune: k, Label: "1-4", Description: "Tabs",
			Visible: k == '1', Numeric: true, Handler: nop,
		})
	}
	r.AddGlobal("next", &Action{Key: tcell.KeyTab, Label: "Tab", Description: "Next tab", Handler: nop})
	r.AddView("premium", "upgrade", &Action{Label: "u", Description: "Upgrade", Handler: nop})

	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{"global", keysOf(r.Global()), []string{"1-4", "Tab"}},
		{"premium", keysOf(r.View("premium")), []string{"u"}},
		{"unknown view", keysOf(r.View("lobby")), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if strings.Join(tt.got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("keys = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func keysOf(hints []ui.MenuHint) []string {
	var out []string
	for _, h := range hints {
		out = append(out, h.Key)
	}
	return out
}
