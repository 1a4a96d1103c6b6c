package layout

import "time"

// Document is the composed page sequence handed to a rendering backend.
type Document struct {
	Title     string
	CreatedAt time.Time
	Pages     []Page
}
