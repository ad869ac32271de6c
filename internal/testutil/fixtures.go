package testutil

import "github.com/kwhite/itemstore/pkg/models"

// NewDraft returns an ItemDraft with sensible defaults, suitable for test
// fixtures. Override individual fields via options as needed.
func NewDraft(opts ...func(*models.ItemDraft)) models.ItemDraft {
	d := models.ItemDraft{
		Title:       "test-item",
		Description: "created by a test",
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// WithTitle sets the draft title.
func WithTitle(title string) func(*models.ItemDraft) {
	return func(d *models.ItemDraft) { d.Title = title }
}

// WithDescription sets the draft description.
func WithDescription(desc string) func(*models.ItemDraft) {
	return func(d *models.ItemDraft) { d.Description = desc }
}

// WithCompleted sets the draft completed flag.
func WithCompleted(c bool) func(*models.ItemDraft) {
	return func(d *models.ItemDraft) { d.Completed = c }
}
