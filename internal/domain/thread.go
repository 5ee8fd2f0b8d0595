package domain

import (
	"time"
)

type ThreadId = string

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Board          BoardId
	Text           string
	DeletePassword string
}

// Thread is a root post on a board. Replies live inside the thread as
// an ordered subdocument list, newest first.
//
// Reported and DeletePassword are only populated on reads that ask for
// private fields; those reads are never serialized to clients, so the
// omitempty tags keep redacted responses free of both fields at the
// thread level. Reply-level fields are intentionally not redacted.
type Thread struct {
	Id             ThreadId  `json:"_id"`
	Board          BoardId   `json:"board"`
	Text           string    `json:"text"`
	DeletePassword string    `json:"delete_password,omitempty"`
	CreatedOn      time.Time `json:"created_on"`
	BumpedOn       time.Time `json:"bumped_on"`
	Reported       bool      `json:"reported,omitempty"`
	Replies        Replies   `json:"replies"`
}

// Reply returns the reply with the given id, or nil if the thread has
// no such reply.
func (t *Thread) Reply(id ReplyId) *Reply {
	for i := range t.Replies {
		if t.Replies[i].Id == id {
			return &t.Replies[i]
		}
	}
	return nil
}

// AddReply prepends r and bumps the thread, keeping the newest-first
// ordering without a sort.
func (t *Thread) AddReply(r Reply) {
	t.Replies = append(Replies{r}, t.Replies...)
	t.BumpedOn = r.CreatedOn
}
