package api

// Request DTOs
//
// The board comes from the URL path, the rest from the body. Field
// names match the wire format of the original service, so clients post
// delete_password and thread_id verbatim.

type CreateThreadRequest struct {
	Text           string `json:"text" validate:"required"`
	DeletePassword string `json:"delete_password" validate:"required"`
}

type DeleteThreadRequest struct {
	ThreadId       string `json:"thread_id" validate:"required"`
	DeletePassword string `json:"delete_password" validate:"required"`
}

type ReportThreadRequest struct {
	ThreadId string `json:"thread_id" validate:"required"`
}
