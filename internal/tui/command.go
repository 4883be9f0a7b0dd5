package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/matheus3301/gamechat/internal/state"
	"github.com/matheus3301/gamechat/internal/tui/ui"
)

// ErrUnknownCommand is returned for a command name nobody handles.
var ErrUnknownCommand = errors.New("unknown command")

// Command represents a parsed command.
type Command struct {
	Name string
	Args string
}

// ParseCommand parses a command string (without the leading ':').
func ParseCommand(input string) Command {
	input = strings.TrimSpace(input)
	parts := strings.SplitN(input, " ", 2)
	cmd := Command{Name: strings.ToLower(parts[0])}
	if len(parts) > 1 {
		cmd.Args = strings.TrimSpace(parts[1])
	}
	return cmd
}

// Target is what ':' commands act on.
type Target interface {
	SwitchTab(t state.Tab) error
	SelectChat(id int) error
	Search(text string)
	Upgrade() error
	ShowHelp()
	Quit()
}

// Dispatch runs cmd against t.
func Dispatch(cmd Command, t Target) error {
	switch cmd.Name {
	case "tab", "t":
		tab, err := state.ParseTab(strings.ToLower(cmd.Args))
		if err != nil {
			return err
		}
		return t.SwitchTab(tab)
	case "chat", "c":
		id, err := strconv.Atoi(cmd.Args)
		if err != nil {
			return fmt.Errorf("chat id %q: %w", cmd.Args, state.ErrUnknownChat)
		}
		return t.SelectChat(id)
	case "search", "s":
		t.Search(cmd.Args)
		return nil
	case "upgrade":
		return t.Upgrade()
	case "help", "h":
		t.ShowHelp()
		return nil
	case "quit", "q":
		t.Quit()
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Name)
	}
}

// commandHints lists the ':' commands available for the given tabs.
func commandHints(tabs []state.Tab, premium bool) []ui.MenuHint {
	names := make([]string, len(tabs))
	for i, t := range tabs {
		names[i] = string(t)
	}
	hints := []ui.MenuHint{
		{Key: ":tab <name>", Description: strings.Join(names, ", ")},
		{Key: ":chat <id>", Description: "Select chat by id"},
		{Key: ":search <text>", Description: "Set search text"},
	}
	if premium {
		hints = append(hints, ui.MenuHint{Key: ":upgrade", Description: "Activate Premium"})
	}
	return append(hints,
		ui.MenuHint{Key: ":help / :h", Description: "Show this help"},
		ui.MenuHint{Key: ":quit / :q", Description: "Quit application"},
	)
}
