package dal

import (
	"time"
)

// Slot is one named value in durable local storage.
type Slot struct {
	Name      string    `db:"name"`
	Val       string    `db:"val"`
	UpdatedAt time.Time `db:"updated_at"`
}

type TootAction string

const (
	TootScheduled TootAction = "scheduled"
	TootDeleted   TootAction = "deleted"
	TootReplaced  TootAction = "replaced"
)

// TootLogEntry records a change made to the user's scheduled posts.
// Text keeps the content of deleted posts, which is otherwise gone after a failed edit.
type TootLogEntry struct {
	Id          int        `db:"id"`
	LoggedAt    time.Time  `db:"logged_at"`
	Instance    string     `db:"instance"`
	Action      TootAction `db:"action"`
	StatusId    string     `db:"status_id"`
	ScheduledAt string     `db:"scheduled_at"`
	Text        string     `db:"text"`
}
