package domain

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle            UserState = "idle"
	StateWaitingWord     UserState = "waiting_word"
	StateWaitingSentence UserState = "waiting_sentence"
	StateWaitingTag      UserState = "waiting_tag"
	StateWaitingTopic    UserState = "waiting_topic"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State  UserState
	WordID string // word the pending sentence or tag belongs to
}

// Streak is the consecutive-day visit counter
type Streak struct {
	Streak    int    `json:"streak"`
	LastVisit string `json:"lastVisit"`
}

// ActivityLog maps a YYYY-MM-DD date to the number of reviews done that day
type ActivityLog map[string]int
