package dataset

import (
	"context"
	"path/filepath"
	"testing"
)

func testDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return ds
}

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	first, err := db.Migrate()
	if err != nil {
		t.Fatal(err)
	}
	if !first.Changed {
		t.Error("first Migrate() should report Changed=true")
	}

	second, err := db.Migrate()
	if err != nil {
		t.Fatal(err)
	}
	if second.Changed {
		t.Error("second Migrate() should report Changed=false")
	}
	if second.Version != 2 || second.Dirty {
		t.Errorf("version = %d dirty = %v, want 2 (schema + seed), clean", second.Version, second.Dirty)
	}
}

func TestLoadCounts(t *testing.T) {
	ds := testDataset(t)

	if ds.Version() != 2 {
		t.Errorf("Version() = %d, want 2", ds.Version())
	}
	checks := []struct {
		name string
		got  int
		want int
	}{
		{"chats", len(ds.Chats()), 4},
		{"contacts", len(ds.Contacts()), 4},
		{"achievements", len(ds.Achievements()), 5},
		{"messages", len(ds.Conversation().Messages), 4},
		{"stats", len(ds.Profile().Stats), 3},
		{"settings sections", len(ds.Settings()), 2},
		{"perks", len(ds.Offer().Perks), 6},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}
}

func TestSeedValues(t *testing.T) {
	ds := testDataset(t)

	chat, ok := ds.ChatByID(3)
	if !ok {
		t.Fatal("ChatByID(3) not found")
	}
	if chat.Name != "Планы" || chat.Unread != 7 || chat.Level != 52 {
		t.Errorf("chat 3 = %+v", chat)
	}

	contact, ok := ds.ContactByID(2)
	if !ok {
		t.Fatal("ContactByID(2) not found")
	}
	if contact.IsOnline {
		t.Error("FireMage should be offline")
	}

	p := ds.Profile()
	if p.Nickname != "ProGamer2024" || p.Level != 42 || p.XPPercent != 46 {
		t.Errorf("profile = %+v", p)
	}

	conv := ds.Conversation()
	if conv.Title != "Игра" || conv.Subtitle != "12 участников онлайн" {
		t.Errorf("conversation header = %q / %q", conv.Title, conv.Subtitle)
	}
	if !conv.Messages[1].IsMine || conv.Messages[0].IsMine {
		t.Errorf("message ownership = %v, %v", conv.Messages[0].IsMine, conv.Messages[1].IsMine)
	}

	settings := ds.Settings()
	if len(settings[0].Rows) != 3 || len(settings[1].Rows) != 2 {
		t.Errorf("settings rows = %d/%d, want 3/2", len(settings[0].Rows), len(settings[1].Rows))
	}
	if !settings[0].Rows[2].Accent {
		t.Error("third gameplay row should be accented")
	}
}

// TestAchievementFlagsIndependent pins down that unlocked and progress are
// stored as-is: locked achievements carry partial progress.
func TestAchievementFlagsIndependent(t *testing.T) {
	ds := testDataset(t)

	byID := map[int]Achievement{}
	for _, a := range ds.Achievements() {
		byID[a.ID] = a
	}
	tests := []struct {
		id       int
		unlocked bool
		progress int
	}{
		{1, true, 100},
		{3, false, 0},
		{4, false, 45},
		{5, false, 67},
	}
	for _, tt := range tests {
		a := byID[tt.id]
		if a.Unlocked != tt.unlocked || a.Progress != tt.progress {
			t.Errorf("achievement %d = unlocked %v progress %d, want %v %d", tt.id, a.Unlocked, a.Progress, tt.unlocked, tt.progress)
		}
	}
}

func TestLookupNotFound(t *testing.T) {
	ds := testDataset(t)

	for _, id := range []int{0, -1, 5, 999} {
		if _, ok := ds.ChatByID(id); ok {
			t.Errorf("ChatByID(%d) found, want not found", id)
		}
		if _, ok := ds.ContactByID(id); ok {
			t.Errorf("ContactByID(%d) found, want not found", id)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	ds := testDataset(t)

	chats := ds.Chats()
	chats[0].Name = "mutated"
	if c, _ := ds.ChatByID(1); c.Name == "mutated" {
		t.Error("Chats() exposed internal slice")
	}

	conv := ds.Conversation()
	conv.Messages[0].Text = "mutated"
	if ds.Conversation().Messages[0].Text == "mutated" {
		t.Error("Conversation() exposed internal messages")
	}

	settings := ds.Settings()
	settings[0].Rows[0].Value = "mutated"
	if ds.Settings()[0].Rows[0].Value == "mutated" {
		t.Error("Settings() exposed internal rows")
	}
}

func TestFilterChats(t *testing.T) {
	ds := testDataset(t)

	tests := []struct {
		query string
		want  []int
	}{
		{"", []int{1, 2, 3, 4}},
		{"   ", []int{1, 2, 3, 4}},
		{"игра", []int{1}},
		{"РЕЙД", []int{3}},
		{"турнир", []int{2}},
		{"nothing matches", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := ds.FilterChats(tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("FilterChats(%q) = %d chats, want %d", tt.query, len(got), len(tt.want))
			}
			for i, c := range got {
				if c.ID != tt.want[i] {
					t.Errorf("FilterChats(%q)[%d].ID = %d, want %d", tt.query, i, c.ID, tt.want[i])
				}
			}
		})
	}
}

func TestFilterContacts(t *testing.T) {
	ds := testDataset(t)

	if got := ds.FilterContacts("ninja"); len(got) != 1 || got[0].Name != "ShadowNinja" {
		t.Errorf("FilterContacts(ninja) = %+v", got)
	}
	if got := ds.FilterContacts("в игре"); len(got) != 2 {
		t.Errorf("FilterContacts(в игре) = %d contacts, want 2", len(got))
	}
}
