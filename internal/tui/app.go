package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/gamechat/internal/dataset"
	"github.com/matheus3301/gamechat/internal/state"
	"github.com/matheus3301/gamechat/internal/tui/keys"
	"github.com/matheus3301/gamechat/internal/tui/model"
	"github.com/matheus3301/gamechat/internal/tui/ui"
	"github.com/matheus3301/gamechat/internal/tui/views"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const (
	pageHelp    = "help"
	headerRows  = 5
	promptRows  = 3
	searchRows  = 3
	menuRows    = 4
	logoColumns = 16
)

// App is the main TUI application shell.
type App struct {
	app      *tview.Application
	theme    *ui.Theme
	state    *state.AppState
	data     *dataset.Dataset
	opts     model.Options
	logger   *zap.Logger
	registry *keys.Registry
	flash    *ui.FlashModel

	root     *tview.Flex
	header   *ui.Header
	menu     *ui.Menu
	tabBar   *ui.TabBar
	search   *views.SearchBar
	pages    *ui.Pages
	prompt   *ui.Prompt
	flashBar *ui.FlashBar

	chats    *views.ChatsView
	contacts *views.ContactsView
	profile  *views.ProfileView
	settings *views.SettingsView
	premium  *views.PremiumView
	help     *views.HelpView

	components map[string]ui.Component
	screen     model.Screen

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp creates the TUI application. Nothing touches the terminal until Run.
func NewApp(st *state.AppState, ds *dataset.Dataset, opts model.Options, logger *zap.Logger) *App {
	ctx, cancel := context.WithCancel(context.Background())
	theme := ui.DefaultTheme()

	a := &App{
		app:      tview.NewApplication(),
		theme:    theme,
		state:    st,
		data:     ds,
		opts:     opts,
		logger:   logger,
		registry: keys.NewRegistry(),
		flash:    ui.NewFlashModel(),
		header:   ui.NewHeader(theme),
		menu:     ui.NewMenu(theme, menuRows),
		tabBar:   ui.NewTabBar(theme),
		search:   views.NewSearchBar(theme),
		pages:    ui.NewPages(),
		prompt:   ui.NewPrompt(theme),
		flashBar: ui.NewFlashBar(theme),
		chats:    views.NewChatsView(theme),
		contacts: views.NewContactsView(theme),
		profile:  views.NewProfileView(theme),
		settings: views.NewSettingsView(theme),
		premium:  views.NewPremiumView(theme),
		help:     views.NewHelpView(theme),
		ctx:      ctx,
		cancel:   cancel,
	}

	a.setupBindings()
	a.setupCallbacks()
	a.setupLayout()
	a.render()

	return a
}

func (a *App) setupBindings() {
	tabs := a.state.Snapshot().Tabs
	for i, t := range tabs {
		a.registry.AddGlobal("tab-"+string(t), &keys.Action{
			Key: tcell.KeyRune, Rune: rune('1' + i),
			Label: fmt.Sprintf("1-%d", len(tabs)), Description: "Tabs",
			Visible: i == 0, Numeric: true,
			Handler: func() { a.act(a.SwitchTab(t)) },
		})
	}
	a.registry.AddGlobal("next-tab", &keys.Action{
		Key: tcell.KeyTab, Label: "Tab", Description: "Next tab",
		Handler: func() { a.cycleTab(a.state.NextTab) },
	})
	a.registry.AddGlobal("prev-tab", &keys.Action{
		Key: tcell.KeyBacktab, Label: "S-Tab", Description: "Prev tab",
		Handler: func() { a.cycleTab(a.state.PrevTab) },
	})
	a.registry.AddGlobal("search", &keys.Action{
		Key: tcell.KeyRune, Rune: '/', Label: "/", Description: "Search", Visible: true,
		Handler: a.focusSearch,
	})
	a.registry.AddGlobal("command", &keys.Action{
		Key: tcell.KeyRune, Rune: ':', Label: ":", Description: "Command", Visible: true,
		Handler: a.showPrompt,
	})
	a.registry.AddGlobal("help", &keys.Action{
		Key: tcell.KeyRune, Rune: '?', Label: "?", Description: "Help", Visible: true,
		Handler: a.ShowHelp,
	})
	a.registry.AddGlobal("quit", &keys.Action{
		Key: tcell.KeyRune, Rune: 'q', Label: "q", Description: "Quit", Visible: true,
		Handler: a.Quit,
	})
	a.registry.AddView(pageHelp, "close", &keys.Action{
		Key: tcell.KeyEscape, Label: "Esc", Description: "Back",
		Handler: a.closeHelp,
	})
	a.registry.AddView(string(state.Premium), "upgrade", &keys.Action{
		Key: tcell.KeyRune, Rune: 'u', Label: "u", Description: "Activate Premium",
		Handler: func() { a.act(a.Upgrade()) },
	})
}

// helpSections describes the bindings that exist in this session.
func (a *App) helpSections() []views.HelpSection {
	snap := a.state.Snapshot()
	global := append(a.registry.Global(), a.registry.View(pageHelp)...)
	global = append(global, ui.MenuHint{Key: "Ctrl-C", Description: "Quit immediately"})

	sections := []views.HelpSection{
		{Title: "Global Keys", Hints: global},
		{Title: "Chats", Hints: a.chats.Hints()},
	}
	if snap.PremiumEnabled {
		sections = append(sections, views.HelpSection{
			Title: "Premium",
			Hints: a.registry.View(string(state.Premium)),
		})
	}
	return append(sections, views.HelpSection{
		Title: "Commands (: mode)",
		Hints: commandHints(snap.Tabs, snap.PremiumEnabled),
	})
}

func (a *App) setupCallbacks() {
	a.tabBar.SetOnSelect(a.selectTabIndex)
	a.chats.SetOnSelect(func(id int) {
		a.act(a.SelectChat(id))
	})
	a.premium.SetOnUpgrade(func() {
		a.act(a.Upgrade())
	})

	a.search.SetOnChange(func(text string) {
		a.state.SetSearchQuery(text)
		a.render()
	})
	a.search.SetOnDone(func() {
		a.focusPage()
	})

	a.prompt.SetOnSubmit(func(text string) {
		a.hidePrompt()
		a.runCommand(text)
	})
	a.prompt.SetOnCancel(a.hidePrompt)
}

func (a *App) runCommand(text string) {
	cmd := ParseCommand(text)
	if err := Dispatch(cmd, a); err != nil {
		a.logger.Warn("command failed", zap.String("command", cmd.Name), zap.Error(err))
		a.showFlash(func() { a.flash.Err(err) })
	}
}

func (a *App) setupLayout() {
	logo := ui.NewLogo(a.theme)
	top := tview.NewFlex().
		AddItem(logo, logoColumns, 0, false).
		AddItem(a.header, 0, 1, false).
		AddItem(a.menu, 0, 2, false)

	a.components = map[string]ui.Component{
		string(state.Chats):    a.chats,
		string(state.Contacts): a.contacts,
		string(state.Profile):  a.profile,
		string(state.Settings): a.settings,
		string(state.Premium):  a.premium,
		pageHelp:               a.help,
	}

	a.pages.AddPage(string(state.Chats), a.chats, true, false)
	a.pages.AddPage(string(state.Contacts), a.contacts, true, false)
	a.pages.AddPage(string(state.Profile), a.profile, true, false)
	a.pages.AddPage(string(state.Settings), a.settings, true, false)
	if a.state.Snapshot().PremiumEnabled {
		a.pages.AddPage(string(state.Premium), a.premium, true, false)
	}
	a.help.Update(a.helpSections())
	a.pages.AddPage(pageHelp, a.help, true, false)
	a.pages.SetOnChange(func([]string) { a.updateMenu() })

	a.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(top, headerRows, 0, false).
		AddItem(a.tabBar, 1, 0, false).
		AddItem(a.search, searchRows, 0, false).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.prompt, 0, 0, false).
		AddItem(a.flashBar, 1, 0, false)

	a.app.SetRoot(a.root, true)
	a.app.EnableMouse(true)
	a.app.SetInputCapture(a.handleKey)
}

// handleKey routes a key event; it returns nil when the event was consumed.
func (a *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	// Text inputs handle all keys themselves.
	if a.search.HasFocus() || a.prompt.HasFocus() {
		return event
	}
	if a.registry.HandleEvent(a.pages.Current(), event) {
		return nil
	}
	return event
}

// render rebuilds the screen from state and pushes it into the widgets.
func (a *App) render() {
	snap := a.state.Snapshot()
	a.screen = model.Build(snap, a.data, a.opts)
	scr := a.screen

	a.header.Update(ui.HeaderData{
		Title:   scr.Header.Title,
		Level:   scr.Header.Level,
		Premium: scr.Header.Premium,
	})

	items := make([]ui.TabItem, len(scr.Tabs))
	for i, b := range scr.Tabs {
		items[i] = ui.TabItem{
			Key:     b.Key,
			Label:   b.Label,
			Active:  b.Active,
			Premium: b.Tab == state.Premium,
		}
	}
	a.tabBar.Update(items)
	a.search.Update(scr.Search)

	switch p := scr.Panel.(type) {
	case model.ChatsPanel:
		a.chats.Update(p)
	case model.ContactsPanel:
		a.contacts.Update(p)
	case model.ProfilePanel:
		a.profile.Update(p)
	case model.SettingsPanel:
		a.settings.Update(p)
	case model.PremiumPanel:
		a.premium.Update(p)
	}

	name := string(scr.Panel.Tab())
	if a.pages.Base() != name {
		a.pages.Reset(name)
		if !a.search.HasFocus() {
			a.focusPage()
		}
	}
	a.updateMenu()
}

func (a *App) updateMenu() {
	current := a.pages.Current()
	var hints []ui.MenuHint
	if c, ok := a.components[current]; ok {
		hints = append(hints, c.Hints()...)
	}
	hints = append(hints, a.registry.Hints(current)...)
	a.menu.Update(hints)
}

// focusPage gives focus to the widget of the top page.
func (a *App) focusPage() {
	switch a.pages.Current() {
	case string(state.Chats):
		a.app.SetFocus(a.chats.List())
	case string(state.Premium):
		a.app.SetFocus(a.premium.Button())
	case pageHelp:
		a.app.SetFocus(a.help)
	default:
		if c, ok := a.components[a.pages.Current()].(tview.Primitive); ok {
			a.app.SetFocus(c)
		}
	}
}

// selectTabIndex switches to the tab shown at position i of the tab bar.
func (a *App) selectTabIndex(i int) {
	tabs := a.state.Snapshot().Tabs
	if i < 0 || i >= len(tabs) {
		return
	}
	a.act(a.SwitchTab(tabs[i]))
}

func (a *App) cycleTab(shift func() state.Tab) {
	a.closeHelp()
	shift()
	a.render()
}

func (a *App) focusSearch() {
	a.app.SetFocus(a.search.InputField)
}

func (a *App) showPrompt() {
	a.root.ResizeItem(a.prompt, promptRows, 0)
	a.app.SetFocus(a.prompt.InputField)
}

func (a *App) hidePrompt() {
	a.root.ResizeItem(a.prompt, 0, 0)
	a.focusPage()
}

func (a *App) closeHelp() {
	if a.pages.Current() == pageHelp {
		a.pages.Pop()
		a.focusPage()
	}
}

// act reports a failed key action without interrupting the UI.
func (a *App) act(err error) {
	if err == nil {
		return
	}
	a.logger.Warn("action rejected", zap.Error(err))
	a.showFlash(func() { a.flash.Err(err) })
}

func (a *App) showFlash(set func()) {
	set()
	a.flashBar.Update(a.flash.GetMessage())
}

// SwitchTab activates tab t.
func (a *App) SwitchTab(t state.Tab) error {
	if err := a.state.SetActiveTab(t); err != nil {
		return fmt.Errorf("switch tab: %w", err)
	}
	a.closeHelp()
	a.render()
	return nil
}

// SelectChat marks the chat with the given id as selected.
func (a *App) SelectChat(id int) error {
	if err := a.state.SetSelectedChat(id); err != nil {
		return fmt.Errorf("select chat: %w", err)
	}
	a.render()
	return nil
}

// Search replaces the search text.
func (a *App) Search(text string) {
	a.state.SetSearchQuery(text)
	a.render()
}

// Upgrade activates the premium plan.
func (a *App) Upgrade() error {
	if a.state.IsPremium() {
		a.showFlash(func() { a.flash.Info("Premium уже активен") })
		return nil
	}
	if err := a.state.SetPremium(true); err != nil {
		return fmt.Errorf("upgrade: %w", err)
	}
	a.render()
	a.showFlash(func() { a.flash.Info("👑 Premium активирован") })
	return nil
}

// ShowHelp opens the help overlay.
func (a *App) ShowHelp() {
	if a.pages.Current() == pageHelp {
		return
	}
	a.pages.Push(pageHelp)
	a.focusPage()
}

// Quit stops the application.
func (a *App) Quit() {
	a.Stop()
}

// Screen returns the last rendered screen.
func (a *App) Screen() model.Screen {
	return a.screen
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	a.logger.Info("tui starting", zap.String("tab", string(a.state.ActiveTab())))
	go a.expireFlash()
	err := a.app.Run()
	a.cancel()
	return err
}

// expireFlash clears the flash bar once its message times out.
func (a *App) expireFlash() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			a.app.QueueUpdateDraw(func() {
				a.flashBar.Update(a.flash.GetMessage())
			})
		case <-a.ctx.Done():
			return
		}
	}
}

// Stop gracefully shuts down the TUI.
func (a *App) Stop() {
	a.cancel()
	a.app.Stop()
}
