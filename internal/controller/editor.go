package controller

import "github.com/MKhiriev/rate-keeper/models"

// Editor holds the five rating controls of the detail view. Values are
// clamped on every change, so they are always within bounds.
type Editor struct {
	scores models.Scores
	cursor models.ScoreField
}

// NewEditor returns an editor pre-filled from r, or zeroed when r is nil.
func NewEditor(r *models.Rating) Editor {
	var e Editor
	if r != nil {
		e.scores = r.Scores.Clamp()
	}
	return e
}

func (e Editor) Scores() models.Scores {
	return e.scores
}

func (e Editor) Cursor() models.ScoreField {
	return e.cursor
}

func (e Editor) Value(f models.ScoreField) int {
	return e.scores.Get(f)
}

// Select moves the cursor to f. Unknown fields are ignored.
func (e *Editor) Select(f models.ScoreField) {
	if f < models.ScoreA || f > models.ScoreN {
		return
	}
	e.cursor = f
}

// Next moves the cursor to the following control, wrapping around.
func (e *Editor) Next() {
	e.cursor = (e.cursor + 1) % models.ScoreFields
}

// Prev moves the cursor to the preceding control, wrapping around.
func (e *Editor) Prev() {
	e.cursor = (e.cursor + models.ScoreFields - 1) % models.ScoreFields
}

// Adjust adds delta to the control under the cursor.
func (e *Editor) Adjust(delta int) {
	e.Set(e.cursor, e.scores.Get(e.cursor)+delta)
}

// Set assigns v to f, clamped to the control's bounds.
func (e *Editor) Set(f models.ScoreField, v int) {
	e.scores = e.scores.With(f, v)
}
