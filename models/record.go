package models

import "time"

// JournalRecord is a single timestamped journal entry.
//
// Records are write-once: they are created by their author, read by the
// author or an elevated identity, and deleted by the author. No update
// operation exists.
type JournalRecord struct {
	// ID is the opaque identifier assigned by the persistence layer.
	ID string `json:"id"`

	// AuthorID is the owning identity.
	AuthorID int64 `json:"author_id"`

	// AuthorName and AuthorEmail are denormalized snapshots of the author's
	// display name and email captured at write time. They are never resolved
	// live at read time, so a later account rename does not rewrite history.
	// Either may be absent.
	AuthorName  string `json:"author_name,omitempty"`
	AuthorEmail string `json:"author_email,omitempty"`

	// Date is the calendar date of the entry, YYYY-MM-DD.
	// Time is the clock time, HH:MM. Both are client-supplied and define the
	// display ordering of records.
	Date string `json:"date"`
	Time string `json:"time"`

	// Narrative is the required "what happened today" free text.
	Narrative string `json:"narrative"`

	// Gratitude is the optional gratitude note.
	Gratitude string `json:"gratitude,omitempty"`

	// Emotions holds 1-2 emotion snapshots selected at save time,
	// in selection order.
	Emotions []EmotionSnapshot `json:"emotions"`

	// CreatedAt is the server-assigned write timestamp. It is used for
	// auditing and fetch bounds only, never for display ordering.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the JournalRecord model.
func (r JournalRecord) TableName() string {
	return "records"
}

// SortKey returns the "date time" string that defines display order.
// Lexicographic comparison is correct because both components are fixed-width
// and zero-padded.
func (r JournalRecord) SortKey() string {
	return r.Date + " " + r.Time
}
