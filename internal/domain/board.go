package domain

type (
	BoardId   = string
	BoardName = string
)

// Board is a named container for threads. Boards are created lazily on
// the first post to an unseen name and are never updated or deleted.
type Board struct {
	Id   BoardId   `json:"_id"`
	Name BoardName `json:"name"`
}
