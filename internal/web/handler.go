// Package web serves the server-rendered board pages that the API
// redirects to after thread and reply creation.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/msgboard-dev/msgboard/internal/domain"
	"github.com/msgboard-dev/msgboard/internal/logger"
	"github.com/msgboard-dev/msgboard/internal/markdown"
	"github.com/msgboard-dev/msgboard/internal/service"
	"github.com/msgboard-dev/msgboard/internal/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

type Handler struct {
	templates     *template.Template
	textProcessor *markdown.TextProcessor
	thread        service.ThreadService
}

func New(thread service.ThreadService) *Handler {
	templates := template.Must(template.ParseFS(templateFS, "templates/*.html"))
	return &Handler{
		templates:     templates,
		textProcessor: markdown.New(),
		thread:        thread,
	}
}

// View models: post text arrives pre-rendered and sanitized, so the
// templates can emit it without re-escaping.

type ReplyView struct {
	Id        domain.ReplyId
	HTML      template.HTML
	Deleted   bool
	CreatedOn time.Time
}

type ThreadView struct {
	Id        domain.ThreadId
	HTML      template.HTML
	CreatedOn time.Time
	BumpedOn  time.Time
	Replies   []ReplyView
}

type boardPageData struct {
	Board   string
	Threads []ThreadView
}

type threadPageData struct {
	Board  string
	Thread ThreadView
}

func (h *Handler) threadView(thread domain.Thread) ThreadView {
	view := ThreadView{
		Id:        thread.Id,
		HTML:      template.HTML(h.textProcessor.Render(thread.Text)),
		CreatedOn: thread.CreatedOn,
		BumpedOn:  thread.BumpedOn,
	}
	for _, reply := range thread.Replies {
		view.Replies = append(view.Replies, ReplyView{
			Id:        reply.Id,
			HTML:      template.HTML(h.textProcessor.Render(reply.Text)),
			Deleted:   reply.Deleted(),
			CreatedOn: reply.CreatedOn,
		})
	}
	return view
}

// Board renders the recent-threads listing. The listing is global
// (most recently bumped threads across all boards), same as the API's
// GET /api/threads/{board}.
func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	boardName := chi.URLParam(r, "board")

	threads, err := h.thread.Recent()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	data := boardPageData{Board: boardName}
	for _, thread := range threads {
		data.Threads = append(data.Threads, h.threadView(thread))
	}

	h.render(w, "board.html", data)
}

// Thread renders one full thread with all of its replies.
func (h *Handler) Thread(w http.ResponseWriter, r *http.Request) {
	boardName := chi.URLParam(r, "board")
	threadId := chi.URLParam(r, "thread")

	thread, err := h.thread.Find(threadId, false)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	data := threadPageData{Board: boardName, Thread: h.threadView(thread)}

	h.render(w, "thread.html", data)
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
	}
}
