package types

import "time"

// DefaultTitle is stored when a note is created or updated with an empty
// title.
const DefaultTitle = "Untitled Note"

// Note is a single stored note. ID and both timestamps are assigned by the
// daemon; clients never fabricate them.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n *Note) Clone() *Note {
	if n == nil {
		return nil
	}
	clone := *n
	return &clone
}
