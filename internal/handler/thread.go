package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/msgboard-dev/msgboard/internal/api"
	"github.com/msgboard-dev/msgboard/internal/domain"
	internal_errors "github.com/msgboard-dev/msgboard/internal/errors"
	"github.com/msgboard-dev/msgboard/internal/utils"
)

// CreateThread posts a new thread to a board, creating the board on
// first use. The lookup-then-create sequence is deliberately not
// transactional: if two first posts race, the loser hits the unique
// constraint and the failure propagates as-is.
func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	boardName := chi.URLParam(r, "board")

	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	boards, err := h.board.FindByName(boardName)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var board domain.Board
	if len(boards) == 0 {
		board, err = h.board.Create(boardName)
		if err != nil {
			utils.WriteErrorAndStatusCode(w, err)
			return
		}
	} else {
		board = boards[0]
	}

	_, err = h.thread.Create(domain.ThreadCreationData{
		Board:          board.Id,
		Text:           body.Text,
		DeletePassword: body.DeletePassword,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	http.Redirect(w, r, "/b/"+boardName, http.StatusSeeOther)
}

// GetThreads lists the most recently bumped threads with a short
// preview of each one's newest replies, thread-level private fields
// redacted.
func (h *Handler) GetThreads(w http.ResponseWriter, r *http.Request) {
	threads, err := h.thread.Recent()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if threads == nil {
		threads = []domain.Thread{}
	}

	writeJSON(w, threads)
}

// DeleteThread removes a thread and all of its replies after a
// password check. A wrong password is a 200 carrying "incorrect
// password", not an error status.
func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	var body api.DeleteThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	_, err := h.thread.ValidatePassword(body.ThreadId, body.DeletePassword, "", false)
	if err != nil {
		if errors.Is(err, internal_errors.ErrPasswordMismatch) {
			w.Write([]byte("incorrect password"))
			return
		}
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.thread.Delete(body.ThreadId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeSuccess(w)
}

// ReportThread flags a thread for moderator attention. Idempotent.
func (h *Handler) ReportThread(w http.ResponseWriter, r *http.Request) {
	var body api.ReportThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.thread.ReportThread(body.ThreadId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeSuccess(w)
}
