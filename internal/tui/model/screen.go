// Package model turns a state snapshot and the static dataset into a
// render tree. Build is pure: views draw whatever it returns.
package model

import (
	"fmt"
	"strconv"

	"github.com/matheus3301/gamechat/internal/dataset"
	"github.com/matheus3301/gamechat/internal/state"
)

const (
	AppTitle            = "GameChat"
	SearchPlaceholder   = "Поиск..."
	ComposerPlaceholder = "Написать сообщение..."
	XPCaption           = "До следующего уровня"
	XPBoostSuffix       = " (x2 скорость)"
	ReceivedBadge       = "Получено!"
	SaveLabel           = "Сохранить изменения"
	UpgradeLabel        = "🚀 Получить Premium"
	PremiumHeroTitle    = "GameChat Premium"
	PremiumHeroTagline  = "Получи максимум от общения — стань легендой!"
	WelcomeTitle        = "Добро пожаловать в Premium!"
	WelcomeText         = "Теперь ты — легенда GameChat! Все премиум-функции активированы."
)

// Options toggles optional rendering behavior.
type Options struct {
	// SearchFilters applies the search query to the chat and contact lists.
	SearchFilters bool
}

// Screen is everything drawn for one frame.
type Screen struct {
	Header Header
	Tabs   []TabButton
	Search Search
	Panel  Panel
}

// Header is the title row.
type Header struct {
	Title   string
	Level   int
	Premium bool
}

// TabButton is one entry of the tab bar.
type TabButton struct {
	Tab    state.Tab
	Key    string
	Label  string
	Active bool
}

// Search describes the search box.
type Search struct {
	Query       string
	Placeholder string
	// Applied reports whether the query narrows any list.
	Applied bool
}

// Panel is the content of the active tab. Exactly one is built per frame.
type Panel interface {
	Tab() state.Tab
}

// ChatItem is one row of the chat list.
type ChatItem struct {
	ID          int
	Name        string
	Avatar      string
	LastMessage string
	Time        string
	Level       int
	// UnreadBadge is the unread count, or empty when there is nothing unread.
	UnreadBadge string
	Selected    bool
}

// Bubble is one transcript message.
type Bubble struct {
	Sender     string
	Text       string
	Time       string
	Mine       bool
	ShowSender bool
}

// Transcript is the right-hand conversation pane.
type Transcript struct {
	Title       string
	Subtitle    string
	Avatar      string
	Bubbles     []Bubble
	Placeholder string
}

// ChatsPanel is the chats tab.
type ChatsPanel struct {
	Items      []ChatItem
	Total      int
	Transcript Transcript
}

func (ChatsPanel) Tab() state.Tab { return state.Chats }

// ContactCard is one friend card.
type ContactCard struct {
	ID     int
	Name   string
	Avatar string
	Status string
	Level  int
	Online bool
}

// ContactsPanel is the contacts tab.
type ContactsPanel struct {
	Cards []ContactCard
	Total int
}

func (ContactsPanel) Tab() state.Tab { return state.Contacts }

// AchievementTile is one achievement on the profile.
type AchievementTile struct {
	Title       string
	Description string
	Icon        string
	Unlocked    bool
	// Badge is ReceivedBadge for unlocked achievements.
	Badge string
	// ShowProgress is set only for locked achievements with some progress.
	ShowProgress bool
	Progress     int
}

// ProfilePanel is the profile tab.
type ProfilePanel struct {
	Nickname     string
	Avatar       string
	Level        int
	Crown        bool
	Subtitle     string
	XPCaption    string
	XPLabel      string
	XPPercent    int
	Stats        []dataset.Stat
	Achievements []AchievementTile
}

func (ProfilePanel) Tab() state.Tab { return state.Profile }

// SettingsPanel is the settings tab.
type SettingsPanel struct {
	Sections   []dataset.SettingsSection
	SaveButton string
}

func (SettingsPanel) Tab() state.Tab { return state.Settings }

// Offer is the pricing card shown while on the free plan.
type Offer struct {
	Price      string
	Period     string
	YearlyNote string
	Action     string
	Perks      []dataset.Perk
}

// Tile is a small icon/caption box.
type Tile struct {
	Icon    string
	Caption string
}

// Welcome is the confirmation shown once premium is active.
type Welcome struct {
	Title string
	Text  string
	Tiles []Tile
}

// PremiumPanel is the premium tab. Exactly one of Offer and Welcome is set.
type PremiumPanel struct {
	HeroTitle   string
	HeroTagline string
	Offer       *Offer
	Welcome     *Welcome
}

func (PremiumPanel) Tab() state.Tab { return state.Premium }

// Build renders snap over ds.
func Build(snap state.Snapshot, ds *dataset.Dataset, opts Options) Screen {
	profile := ds.Profile()

	scr := Screen{
		Header: Header{
			Title:   AppTitle,
			Level:   profile.Level,
			Premium: snap.Premium,
		},
		Tabs: tabButtons(snap),
		Search: Search{
			Query:       snap.SearchQuery,
			Placeholder: SearchPlaceholder,
			Applied:     opts.SearchFilters && snap.SearchQuery != "",
		},
	}

	query := ""
	if opts.SearchFilters {
		query = snap.SearchQuery
	}

	switch snap.ActiveTab {
	case state.Contacts:
		scr.Panel = contactsPanel(ds, query)
	case state.Profile:
		scr.Panel = profilePanel(profile, ds.Achievements(), snap.Premium)
	case state.Settings:
		scr.Panel = SettingsPanel{Sections: ds.Settings(), SaveButton: SaveLabel}
	case state.Premium:
		scr.Panel = premiumPanel(ds.Offer(), snap.Premium)
	default:
		scr.Panel = chatsPanel(ds, query, snap)
	}
	return scr
}

func tabButtons(snap state.Snapshot) []TabButton {
	out := make([]TabButton, len(snap.Tabs))
	for i, t := range snap.Tabs {
		out[i] = TabButton{
			Tab:    t,
			Key:    strconv.Itoa(i + 1),
			Label:  t.Label(),
			Active: t == snap.ActiveTab,
		}
	}
	return out
}

func chatsPanel(ds *dataset.Dataset, query string, snap state.Snapshot) ChatsPanel {
	chats := ds.FilterChats(query)
	selected, ok := snap.SelectedChat()

	items := make([]ChatItem, len(chats))
	for i, c := range chats {
		items[i] = ChatItem{
			ID:          c.ID,
			Name:        c.Name,
			Avatar:      c.Avatar,
			LastMessage: c.LastMessage,
			Time:        c.Time,
			Level:       c.Level,
			UnreadBadge: unreadBadge(c.Unread),
			Selected:    ok && c.ID == selected,
		}
	}

	conv := ds.Conversation()
	bubbles := make([]Bubble, len(conv.Messages))
	for i, m := range conv.Messages {
		bubbles[i] = Bubble{
			Sender:     m.Sender,
			Text:       m.Text,
			Time:       m.Time,
			Mine:       m.IsMine,
			ShowSender: !m.IsMine,
		}
	}

	return ChatsPanel{
		Items: items,
		Total: len(ds.Chats()),
		Transcript: Transcript{
			Title:       conv.Title,
			Subtitle:    conv.Subtitle,
			Avatar:      conv.Avatar,
			Bubbles:     bubbles,
			Placeholder: ComposerPlaceholder,
		},
	}
}

func unreadBadge(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func contactsPanel(ds *dataset.Dataset, query string) ContactsPanel {
	contacts := ds.FilterContacts(query)
	cards := make([]ContactCard, len(contacts))
	for i, c := range contacts {
		cards[i] = ContactCard{
			ID:     c.ID,
			Name:   c.Name,
			Avatar: c.Avatar,
			Status: c.Status,
			Level:  c.Level,
			Online: c.IsOnline,
		}
	}
	return ContactsPanel{Cards: cards, Total: len(ds.Contacts())}
}

func profilePanel(p dataset.Profile, achievements []dataset.Achievement, premium bool) ProfilePanel {
	panel := ProfilePanel{
		Nickname:  p.Nickname,
		Avatar:    p.Avatar,
		Level:     p.Level,
		Crown:     premium,
		Subtitle:  p.Title,
		XPCaption: XPCaption,
		XPLabel:   fmt.Sprintf("%s / %s XP", groupThousands(p.XP), groupThousands(p.XPGoal)),
		XPPercent: p.XPPercent,
		Stats:     p.Stats,
	}
	if premium {
		panel.Subtitle = p.PremiumTitle
		panel.XPLabel += XPBoostSuffix
	}

	panel.Achievements = make([]AchievementTile, len(achievements))
	for i, a := range achievements {
		tile := AchievementTile{
			Title:       a.Title,
			Description: a.Description,
			Icon:        a.Icon,
			Unlocked:    a.Unlocked,
			Progress:    a.Progress,
		}
		if a.Unlocked {
			tile.Badge = ReceivedBadge
		} else {
			tile.ShowProgress = a.Progress > 0
		}
		panel.Achievements[i] = tile
	}
	return panel
}

func premiumPanel(offer dataset.PremiumOffer, premium bool) PremiumPanel {
	panel := PremiumPanel{
		HeroTitle:   PremiumHeroTitle,
		HeroTagline: PremiumHeroTagline,
	}
	if premium {
		panel.Welcome = &Welcome{
			Title: WelcomeTitle,
			Text:  WelcomeText,
			Tiles: []Tile{
				{Icon: "👑", Caption: "Статус активен"},
				{Icon: "⚡", Caption: "x2 опыта"},
				{Icon: "💎", Caption: "Всё разблокировано"},
			},
		}
		return panel
	}
	panel.Offer = &Offer{
		Price:      offer.MonthlyPrice,
		Period:     offer.Period,
		YearlyNote: offer.YearlyNote,
		Action:     UpgradeLabel,
		Perks:      offer.Perks,
	}
	return panel
}

// groupThousands formats n with comma separators, e.g. 2340 -> "2,340".
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if n < 0 {
		neg, s = true, s[1:]
	}
	var out []byte
	for i := range len(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
