package domain

import (
	"time"

	"github.com/google/uuid"
)

// Defaults applied when a client omits the optional presentation fields.
const (
	DefaultIcon  = "activity"
	DefaultColor = "#f16a2b"
)

// Category is a user-defined tag that habits can be linked to.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Icon      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Habit is a recurring activity tracked by day.
type Habit struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description *string
	Icon        string
	Color       string

	// Position orders the user's habit list. Assigned once at creation and
	// changed only by reorder; gaps left by deletions are never compacted.
	Position int

	IsActive      bool
	StreakCurrent int
	StreakBest    int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HabitUpdateParams carries a partial update. Nil fields are left unchanged.
type HabitUpdateParams struct {
	Title       *string
	Description *string
	Icon        *string
	Color       *string
}

// IsEmpty reports whether no field would change.
func (p HabitUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Icon == nil && p.Color == nil
}

// HabitPosition is one element of a reorder request.
type HabitPosition struct {
	ID       uuid.UUID
	Position int
}

// CompletionLog records that a habit was completed on a calendar day.
type CompletionLog struct {
	ID        uuid.UUID
	HabitID   uuid.UUID
	Date      time.Time // midnight UTC of the calendar day
	Completed bool
	CreatedAt time.Time
}

// ToggleResult describes the state after a completion toggle.
type ToggleResult struct {
	HabitID       uuid.UUID
	Date          time.Time
	Completed     bool
	Coins         int
	StreakCurrent int
	StreakBest    int
}
