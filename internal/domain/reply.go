package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type ReplyId = string

// DeletedText replaces a reply's text on soft delete. The reply itself
// is never removed from the thread.
const DeletedText = "[deleted]"

// Reply is a sub-post owned by exactly one thread. It is not
// independently addressable in the store; every mutation goes through
// a re-save of the owning thread's replies document.
type Reply struct {
	Id             ReplyId   `json:"_id"`
	Text           string    `json:"text"`
	Reported       bool      `json:"reported"`
	DeletePassword string    `json:"delete_password"`
	CreatedOn      time.Time `json:"created_on"`
}

// Deleted reports whether the reply has been soft deleted.
func (r *Reply) Deleted() bool {
	return r.Text == DeletedText
}

// Replies is the ordered reply list of a thread, stored as a single
// jsonb document so the whole list is written back in one statement.
type Replies []Reply

func (r Replies) Value() (driver.Value, error) {
	if r == nil {
		r = Replies{}
	}
	return json.Marshal(r)
}

func (r *Replies) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	case nil:
		*r = Replies{}
		return nil
	default:
		return fmt.Errorf("unsupported type for replies: %T", src)
	}
}
