// Package models defines the entities persisted by ItemStore.
package models

import "time"

// Item is the single persisted entity managed by ItemStore. The identifier
// is assigned by the store on creation and never reused.
type Item struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemDraft carries the caller-supplied fields for a new Item. Identifier
// and timestamps are filled in by the store.
type ItemDraft struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
}

// ItemPatch describes a partial update. A nil field is left untouched; a
// non-nil field overwrites the stored value, even with the zero value.
// This keeps "explicitly set to empty" distinct from "not provided".
type ItemPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// IsZero reports whether no field of the patch is set.
func (p ItemPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}
