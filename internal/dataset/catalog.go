package dataset

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// Dataset is the immutable sample data the UI renders. Accessors return
// copies, so callers cannot change what other readers see.
type Dataset struct {
	chats        []Chat
	contacts     []Contact
	achievements []Achievement
	conversation Conversation
	profile      Profile
	settings     []SettingsSection
	offer        PremiumOffer
	version      uint
}

// Load builds the catalog in a private in-memory database, reads it
// into a Dataset and closes the database.
func Load(ctx context.Context) (*Dataset, error) {
	db, err := Open(MemoryPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	result, err := db.Migrate()
	if err != nil {
		return nil, err
	}
	ds, err := db.Read(ctx)
	if err != nil {
		return nil, err
	}
	ds.version = result.Version
	return ds, nil
}

// Read loads every catalog table.
func (db *DB) Read(ctx context.Context) (*Dataset, error) {
	ds := &Dataset{}
	steps := []struct {
		name string
		fn   func(context.Context, *Dataset) error
	}{
		{"chats", db.readChats},
		{"contacts", db.readContacts},
		{"achievements", db.readAchievements},
		{"conversation", db.readConversation},
		{"profile", db.readProfile},
		{"settings", db.readSettings},
		{"premium offer", db.readOffer},
	}
	for _, s := range steps {
		if err := s.fn(ctx, ds); err != nil {
			return nil, fmt.Errorf("read %s: %w", s.name, err)
		}
	}
	return ds, nil
}

func (db *DB) readChats(ctx context.Context, ds *Dataset) error {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, last_message, time, unread, avatar, level
		FROM chats ORDER BY id`)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var c Chat
		if err := rows.Scan(&c.ID, &c.Name, &c.LastMessage, &c.Time, &c.Unread, &c.Avatar, &c.Level); err != nil {
			return err
		}
		ds.chats = append(ds.chats, c)
	}
	return rows.Err()
}

func (db *DB) readContacts(ctx context.Context, ds *Dataset) error {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, status, avatar, level, is_online
		FROM contacts ORDER BY id`)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Status, &c.Avatar, &c.Level, &c.IsOnline); err != nil {
			return err
		}
		ds.contacts = append(ds.contacts, c)
	}
	return rows.Err()
}

func (db *DB) readAchievements(ctx context.Context, ds *Dataset) error {
	rows, err := db.QueryContext(ctx, `
		SELECT id, title, description, icon, unlocked, progress
		FROM achievements ORDER BY id`)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var a Achievement
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Icon, &a.Unlocked, &a.Progress); err != nil {
			return err
		}
		ds.achievements = append(ds.achievements, a)
	}
	return rows.Err()
}

func (db *DB) readConversation(ctx context.Context, ds *Dataset) error {
	var id int
	c := &ds.conversation
	err := db.QueryRowContext(ctx, `
		SELECT id, title, subtitle, avatar FROM conversations ORDER BY id LIMIT 1`).
		Scan(&id, &c.Title, &c.Subtitle, &c.Avatar)
	if err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, sender, body, time, is_mine
		FROM messages WHERE conversation_id = ? ORDER BY id`, id)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Sender, &m.Text, &m.Time, &m.IsMine); err != nil {
			return err
		}
		c.Messages = append(c.Messages, m)
	}
	return rows.Err()
}

func (db *DB) readProfile(ctx context.Context, ds *Dataset) error {
	p := &ds.profile
	err := db.QueryRowContext(ctx, `
		SELECT nickname, avatar, level, xp, xp_goal, xp_percent, title, premium_title
		FROM profile WHERE id = 1`).
		Scan(&p.Nickname, &p.Avatar, &p.Level, &p.XP, &p.XPGoal, &p.XPPercent, &p.Title, &p.PremiumTitle)
	if err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `SELECT label, value FROM profile_stats ORDER BY position`)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var s Stat
		if err := rows.Scan(&s.Label, &s.Value); err != nil {
			return err
		}
		p.Stats = append(p.Stats, s)
	}
	return rows.Err()
}

func (db *DB) readSettings(ctx context.Context, ds *Dataset) error {
	rows, err := db.QueryContext(ctx, `
		SELECT s.id, s.title, r.label, r.value, r.accent
		FROM settings_sections s
		JOIN settings_rows r ON r.section_id = s.id
		ORDER BY s.id, r.id`)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	lastID := -1
	for rows.Next() {
		var (
			id    int
			title string
			r     SettingsRow
		)
		if err := rows.Scan(&id, &title, &r.Label, &r.Value, &r.Accent); err != nil {
			return err
		}
		if id != lastID {
			ds.settings = append(ds.settings, SettingsSection{Title: title})
			lastID = id
		}
		sec := &ds.settings[len(ds.settings)-1]
		sec.Rows = append(sec.Rows, r)
	}
	return rows.Err()
}

func (db *DB) readOffer(ctx context.Context, ds *Dataset) error {
	o := &ds.offer
	err := db.QueryRowContext(ctx, `
		SELECT monthly_price, period, yearly_note FROM premium_offer WHERE id = 1`).
		Scan(&o.MonthlyPrice, &o.Period, &o.YearlyNote)
	if err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `SELECT icon, title, description FROM premium_perks ORDER BY position`)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var p Perk
		if err := rows.Scan(&p.Icon, &p.Title, &p.Description); err != nil {
			return err
		}
		o.Perks = append(o.Perks, p)
	}
	return rows.Err()
}

// Version is the schema version the catalog was built from.
func (ds *Dataset) Version() uint { return ds.version }

// Chats returns the chat list in display order.
func (ds *Dataset) Chats() []Chat { return slices.Clone(ds.chats) }

// Contacts returns the contact list in display order.
func (ds *Dataset) Contacts() []Contact { return slices.Clone(ds.contacts) }

// Achievements returns the achievements in display order.
func (ds *Dataset) Achievements() []Achievement { return slices.Clone(ds.achievements) }

// Conversation returns the fixed transcript.
func (ds *Dataset) Conversation() Conversation {
	c := ds.conversation
	c.Messages = slices.Clone(c.Messages)
	return c
}

// Profile returns the profile summary.
func (ds *Dataset) Profile() Profile {
	p := ds.profile
	p.Stats = slices.Clone(p.Stats)
	return p
}

// Settings returns the settings sections.
func (ds *Dataset) Settings() []SettingsSection {
	out := make([]SettingsSection, len(ds.settings))
	for i, s := range ds.settings {
		out[i] = SettingsSection{Title: s.Title, Rows: slices.Clone(s.Rows)}
	}
	return out
}

// Offer returns the premium pricing card.
func (ds *Dataset) Offer() PremiumOffer {
	o := ds.offer
	o.Perks = slices.Clone(o.Perks)
	return o
}

// ChatByID looks up a chat. The bool is false when no chat has that id.
func (ds *Dataset) ChatByID(id int) (Chat, bool) {
	for _, c := range ds.chats {
		if c.ID == id {
			return c, true
		}
	}
	return Chat{}, false
}

// ContactByID looks up a contact. The bool is false when no contact has that id.
func (ds *Dataset) ContactByID(id int) (Contact, bool) {
	for _, c := range ds.contacts {
		if c.ID == id {
			return c, true
		}
	}
	return Contact{}, false
}

// FilterChats returns the chats whose name or last message contains query,
// ignoring case. An empty query returns every chat.
func (ds *Dataset) FilterChats(query string) []Chat {
	q := normalize(query)
	if q == "" {
		return ds.Chats()
	}
	var out []Chat
	for _, c := range ds.chats {
		if contains(c.Name, q) || contains(c.LastMessage, q) {
			out = append(out, c)
		}
	}
	return out
}

// FilterContacts returns the contacts whose name or status contains query,
// ignoring case. An empty query returns every contact.
func (ds *Dataset) FilterContacts(query string) []Contact {
	q := normalize(query)
	if q == "" {
		return ds.Contacts()
	}
	var out []Contact
	for _, c := range ds.contacts {
		if contains(c.Name, q) || contains(c.Status, q) {
			out = append(out, c)
		}
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func contains(s, lowered string) bool {
	return strings.Contains(strings.ToLower(s), lowered)
}
