package content

import (
	"time"

	"github.com/mkravtsov/content-portal/internal/db"
)

type Article struct {
	db.Article
}

type Event struct {
	db.Event
}

// NewEvent is the payload for creating an event; the identifier and
// timestamps are assigned by the service.
type NewEvent struct {
	Name        string
	Description string
	Location    string
	StartsAt    time.Time
}
