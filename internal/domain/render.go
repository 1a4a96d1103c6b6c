package domain

import (
	"time"

	"github.com/google/uuid"
)

// RenderOutcome is the terminal state of a recorded render attempt.
type RenderOutcome string

const (
	RenderDone   RenderOutcome = "done"
	RenderFailed RenderOutcome = "failed"
)

// RenderRecord is one entry of the render log. It describes an attempt,
// never the document itself: no artifact bytes are stored.
type RenderRecord struct {
	ID         uuid.UUID     `json:"id"`
	SessionKey string        `json:"session_key,omitempty"`
	FileName   string        `json:"file_name,omitempty"`
	PageCount  int           `json:"page_count"`
	Outcome    RenderOutcome `json:"outcome"`
	Error      string        `json:"error,omitempty"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
}
