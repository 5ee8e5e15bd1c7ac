package domain

import (
	"time"

	"github.com/google/uuid"
)

// CustomTypeID is the type id stored for workouts that carry a free-text
// label instead of a reference to a WorkoutType.
const CustomTypeID = "custom"

// MaxNotesLength is the maximum number of characters allowed in workout notes.
const MaxNotesLength = 280

// WorkoutKind says what kind of workout a record is: either a reference to a
// predefined WorkoutType or a custom free-text label. The zero value means no
// type was selected.
type WorkoutKind struct {
	typeID string
	label  string
}

// Predefined returns a kind referencing the WorkoutType with the given id.
func Predefined(typeID string) WorkoutKind {
	return WorkoutKind{typeID: typeID}
}

// Custom returns a kind carrying a free-text label.
func Custom(label string) WorkoutKind {
	return WorkoutKind{typeID: CustomTypeID, label: label}
}

// TypeID returns the referenced workout type id, or CustomTypeID.
func (k WorkoutKind) TypeID() string { return k.typeID }

// Label returns the custom label. It is empty for predefined kinds.
func (k WorkoutKind) Label() string { return k.label }

// IsCustom reports whether k carries a custom label.
func (k WorkoutKind) IsCustom() bool { return k.typeID == CustomTypeID }

// IsZero reports whether no workout type was selected.
func (k WorkoutKind) IsZero() bool { return k.typeID == "" }

// WorkoutRecord marks a calendar day as a workout day.
// At most one record exists per calendar day; Date is always a value
// produced by CalendarDay.
type WorkoutRecord struct {
	ID        uuid.UUID
	Date      time.Time
	Kind      WorkoutKind
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
