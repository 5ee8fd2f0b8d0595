package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/msgboard-dev/msgboard/internal/api"
	internal_errors "github.com/msgboard-dev/msgboard/internal/errors"
	"github.com/msgboard-dev/msgboard/internal/utils"
)

// CreateReply adds a reply to an existing thread. Unlike thread
// creation, the board must already exist.
func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	boardName := chi.URLParam(r, "board")

	var body api.CreateReplyRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	boards, err := h.board.FindByName(boardName)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if len(boards) == 0 {
		http.Error(w, "Can't reply to a board that doesn't exists", http.StatusPreconditionFailed)
		return
	}

	thread, err := h.thread.Find(body.ThreadId, false)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if _, err := h.thread.AddReply(&thread, body.Text, body.DeletePassword); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	http.Redirect(w, r, "/b/"+boardName+"/"+thread.Id, http.StatusSeeOther)
}

// GetReplies returns one full thread. The thread-level private fields
// are redacted; reply-level ones are not, matching the behavior of the
// system this one replaces.
func (h *Handler) GetReplies(w http.ResponseWriter, r *http.Request) {
	threadId := r.URL.Query().Get("thread_id")

	thread, err := h.thread.Find(threadId, false)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, thread)
}

// DeleteReply soft deletes a reply after a password check: the text
// becomes "[deleted]", everything else stays.
func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	var body api.DeleteReplyRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.ValidatePassword(body.ThreadId, body.DeletePassword, body.ReplyId, true)
	if err != nil {
		if errors.Is(err, internal_errors.ErrPasswordMismatch) {
			w.Write([]byte("incorrect password"))
			return
		}
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.thread.DeleteReply(&thread, body.ReplyId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeSuccess(w)
}

// ReportReply flags a reply for moderator attention. Idempotent.
func (h *Handler) ReportReply(w http.ResponseWriter, r *http.Request) {
	var body api.ReportReplyRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.thread.ReportReply(body.ThreadId, body.ReplyId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeSuccess(w)
}
