package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/gamechat/internal/bus"
	"github.com/matheus3301/gamechat/internal/dataset"
	"github.com/matheus3301/gamechat/internal/state"
	"github.com/matheus3301/gamechat/internal/tui/model"
	"github.com/rivo/tview"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestApp(t *testing.T, premium bool, opts model.Options) (*App, *state.AppState, *observer.ObservedLogs) {
	t.Helper()
	ds, err := dataset.Load(context.Background())
	if err != nil {
		t.Fatalf("dataset.Load() error = %v", err)
	}
	b := bus.New()
	t.Cleanup(b.Close)
	st, err := state.New(state.Options{PremiumEnabled: premium}, ds, b)
	if err != nil {
		t.Fatalf("state.New() error = %v", err)
	}
	core, logs := observer.New(zap.DebugLevel)
	a := NewApp(st, ds, opts, zap.New(core))
	t.Cleanup(a.Stop)
	return a, st, logs
}

func press(a *App, r rune) *tcell.EventKey {
	return a.handleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func pressKey(a *App, k tcell.Key) *tcell.EventKey {
	return a.handleKey(tcell.NewEventKey(k, 0, tcell.ModNone))
}

func TestNewAppRendersChats(t *testing.T) {
	a, _, _ := newTestApp(t, true, model.Options{})

	if _, ok := a.Screen().Panel.(model.ChatsPanel); !ok {
		t.Fatalf("initial panel = %T, want ChatsPanel", a.Screen().Panel)
	}
	if a.pages.Current() != string(state.Chats) {
		t.Errorf("current page = %q", a.pages.Current())
	}
}

func TestNumberKeysSwitchTabs(t *testing.T) {
	a, st, _ := newTestApp(t, true, model.Options{})

	want := []state.Tab{state.Chats, state.Contacts, state.Profile, state.Settings, state.Premium}
	for i, tab := range want {
		if ev := press(a, rune('1'+i)); ev != nil {
			t.Errorf("key %d not consumed", i+1)
		}
		if st.ActiveTab() != tab {
			t.Errorf("key %d: active = %s, want %s", i+1, st.ActiveTab(), tab)
		}
		if got := a.Screen().Panel.Tab(); got != tab {
			t.Errorf("key %d: panel = %s, want %s", i+1, got, tab)
		}
		if a.pages.Current() != string(tab) {
			t.Errorf("key %d: page = %q", i+1, a.pages.Current())
		}
	}
}

func TestTabKeyCycles(t *testing.T) {
	a, st, _ := newTestApp(t, false, model.Options{})

	pressKey(a, tcell.KeyBacktab)
	if st.ActiveTab() != state.Settings {
		t.Errorf("Shift-Tab from chats = %s, want settings", st.ActiveTab())
	}
	pressKey(a, tcell.KeyTab)
	if st.ActiveTab() != state.Chats {
		t.Errorf("Tab from settings = %s, want chats", st.ActiveTab())
	}
	if ev := press(a, '5'); ev == nil {
		t.Error("key 5 consumed with premium disabled")
	}
}

func TestSelectChatMarksRow(t *testing.T) {
	a, st, _ := newTestApp(t, true, model.Options{})

	items := a.Screen().Panel.(model.ChatsPanel).Items
	if len(items) < 3 {
		t.Fatalf("got %d chats, want at least 3", len(items))
	}
	a.act(a.SelectChat(items[2].ID))

	id, ok := st.SelectedChat()
	if !ok || id != 3 {
		t.Fatalf("SelectedChat() = %d, %v, want 3", id, ok)
	}
	for _, it := range a.Screen().Panel.(model.ChatsPanel).Items {
		if it.Selected != (it.ID == 3) {
			t.Errorf("chat %d Selected = %v", it.ID, it.Selected)
		}
	}
}

func TestUpgradeKey(t *testing.T) {
	a, st, _ := newTestApp(t, true, model.Options{})

	press(a, 'u')
	if st.IsPremium() {
		t.Fatal("u upgraded outside the premium tab")
	}

	press(a, '5')
	press(a, 'u')
	if !st.IsPremium() {
		t.Fatal("u did not upgrade on the premium tab")
	}
	p := a.Screen().Panel.(model.PremiumPanel)
	if p.Welcome == nil || p.Offer != nil {
		t.Errorf("premium panel after upgrade = %+v", p)
	}
	if !a.Screen().Header.Premium {
		t.Error("header badge missing")
	}
	if len(a.premium.Hints()) != 0 {
		t.Error("upgrade button still offered")
	}
	if msg := a.flash.GetMessage(); msg == nil {
		t.Error("no confirmation flash")
	}
}

func TestCommandsThroughApp(t *testing.T) {
	a, st, logs := newTestApp(t, false, model.Options{SearchFilters: true})

	if err := Dispatch(ParseCommand("search рейд"), a); err != nil {
		t.Fatal(err)
	}
	if st.SearchQuery() != "рейд" {
		t.Errorf("SearchQuery() = %q", st.SearchQuery())
	}
	if n := len(a.Screen().Panel.(model.ChatsPanel).Items); n != 1 {
		t.Errorf("filtered chats = %d, want 1", n)
	}
	if a.search.GetText() != "рейд" {
		t.Errorf("search box = %q", a.search.GetText())
	}

	err := Dispatch(ParseCommand("tab premium"), a)
	if !errors.Is(err, state.ErrTabUnavailable) {
		t.Errorf("tab premium error = %v, want ErrTabUnavailable", err)
	}
	err = Dispatch(ParseCommand("upgrade"), a)
	if !errors.Is(err, state.ErrPremiumDisabled) {
		t.Errorf("upgrade error = %v, want ErrPremiumDisabled", err)
	}
	err = Dispatch(ParseCommand("chat 99"), a)
	if !errors.Is(err, state.ErrUnknownChat) {
		t.Errorf("chat 99 error = %v, want ErrUnknownChat", err)
	}

	a.runCommand("dance")
	if msg := a.flash.GetMessage(); msg == nil {
		t.Error("unknown command produced no flash")
	}
	if logs.FilterMessage("command failed").Len() != 1 {
		t.Errorf("command failed logs = %d, want 1", logs.FilterMessage("command failed").Len())
	}
}

func TestHelpOverlay(t *testing.T) {
	a, st, _ := newTestApp(t, true, model.Options{})

	press(a, '?')
	if a.pages.Current() != pageHelp {
		t.Fatalf("page = %q, want help", a.pages.Current())
	}
	if a.pages.Base() != string(state.Chats) {
		t.Errorf("base page = %q", a.pages.Base())
	}
	pressKey(a, tcell.KeyEscape)
	if a.pages.Current() != string(state.Chats) {
		t.Errorf("Esc left page %q", a.pages.Current())
	}

	press(a, '?')
	press(a, '3')
	if a.pages.Current() != string(state.Profile) || a.pages.Depth() != 1 {
		t.Errorf("tab switch from help: page=%q depth=%d", a.pages.Current(), a.pages.Depth())
	}
	if st.ActiveTab() != state.Profile {
		t.Errorf("active = %s", st.ActiveTab())
	}
}

func TestSearchFocusPassesKeys(t *testing.T) {
	a, st, _ := newTestApp(t, true, model.Options{})

	press(a, '/')
	if !a.search.HasFocus() {
		t.Fatal("search not focused after /")
	}
	if ev := press(a, '2'); ev == nil {
		t.Error("digit swallowed while typing a search")
	}
	if st.ActiveTab() != state.Chats {
		t.Errorf("tab changed while typing: %s", st.ActiveTab())
	}
}

func TestHelpListsSessionBindings(t *testing.T) {
	tests := []struct {
		name    string
		premium bool
		want    []string
		absent  []string
	}{
		{
			name:    "premium enabled",
			premium: true,
			want:    []string{"1-5", "Premium", ":upgrade", "Activate Premium", "chats, contacts, profile, settings, premium"},
		},
		{
			name:    "premium disabled",
			premium: false,
			want:    []string{"1-4", "chats, contacts, profile, settings", "Ctrl-C"},
			absent:  []string{"1-5", ":upgrade", "Activate Premium", "settings, premium"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, _ := newTestApp(t, tt.premium, model.Options{})
			text := a.help.Text()
			for _, w := range tt.want {
				if !strings.Contains(text, w) {
					t.Errorf("help missing %q:\n%s", w, text)
				}
			}
			for _, w := range tt.absent {
				if strings.Contains(text, w) {
					t.Errorf("help mentions %q:\n%s", w, text)
				}
			}
		})
	}
}

func TestTabBarClickSwitchesTab(t *testing.T) {
	a, st, _ := newTestApp(t, false, model.Options{})
	a.tabBar.SetRect(0, 0, 120, 1)

	col := -1
	for x := 0; x < 120; x++ {
		if i, ok := a.tabBar.TabAt(x); ok && i == 2 {
			col = x
			break
		}
	}
	if col < 0 {
		t.Fatal("third tab not found on the bar")
	}
	ev := tcell.NewEventMouse(col, 0, tcell.Button1, tcell.ModNone)
	if _, out := a.tabBar.GetMouseCapture()(tview.MouseLeftClick, ev); out != nil {
		t.Error("click on a tab not consumed")
	}
	if st.ActiveTab() != state.Profile {
		t.Errorf("active = %s, want profile", st.ActiveTab())
	}

	a.selectTabIndex(4)
	a.selectTabIndex(-1)
	if st.ActiveTab() != state.Profile {
		t.Errorf("out of range index changed tab to %s", st.ActiveTab())
	}
}
