package dataset

// Chat is an entry in the chat list.
type Chat struct {
	ID          int
	Name        string
	LastMessage string
	Time        string
	Unread      int
	Avatar      string
	Level       int
}

// Contact is a friend card.
type Contact struct {
	ID       int
	Name     string
	Status   string
	Avatar   string
	Level    int
	IsOnline bool
}

// Achievement is a profile achievement. Unlocked and Progress are stored
// independently; an unlocked achievement may carry any progress value.
type Achievement struct {
	ID          int
	Title       string
	Description string
	Icon        string
	Unlocked    bool
	Progress    int
}

// Message is one line of the sample conversation.
type Message struct {
	ID     int
	Sender string
	Text   string
	Time   string
	IsMine bool
}

// Conversation is the single transcript shown in the chats panel.
type Conversation struct {
	Title    string
	Subtitle string
	Avatar   string
	Messages []Message
}

// Stat is a labelled profile counter.
type Stat struct {
	Label string
	Value string
}

// Profile is the local player's summary card.
type Profile struct {
	Nickname     string
	Avatar       string
	Level        int
	XP           int
	XPGoal       int
	XPPercent    int
	Title        string
	PremiumTitle string
	Stats        []Stat
}

// SettingsRow is a label/value pair in the settings panel.
type SettingsRow struct {
	Label  string
	Value  string
	Accent bool
}

// SettingsSection groups settings rows under a heading.
type SettingsSection struct {
	Title string
	Rows  []SettingsRow
}

// Perk is one benefit listed on the premium offer.
type Perk struct {
	Icon        string
	Title       string
	Description string
}

// PremiumOffer is the pricing card content.
type PremiumOffer struct {
	MonthlyPrice string
	Period       string
	YearlyNote   string
	Perks        []Perk
}
