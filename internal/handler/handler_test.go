package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/msgboard-dev/msgboard/internal/domain"
)

// MockBoardService mocks service.BoardService.
type MockBoardService struct {
	MockFindByName func(name domain.BoardName) ([]domain.Board, error)
	MockCreate     func(name domain.BoardName) (domain.Board, error)
}

func (m *MockBoardService) FindByName(name domain.BoardName) ([]domain.Board, error) {
	if m.MockFindByName != nil {
		return m.MockFindByName(name)
	}
	return []domain.Board{{Id: "board-id", Name: name}}, nil // Default behavior
}

func (m *MockBoardService) Create(name domain.BoardName) (domain.Board, error) {
	if m.MockCreate != nil {
		return m.MockCreate(name)
	}
	return domain.Board{Id: "board-id", Name: name}, nil // Default behavior
}

// MockThreadService mocks service.ThreadService.
type MockThreadService struct {
	MockFind             func(id domain.ThreadId, includePrivate bool) (domain.Thread, error)
	MockRecent           func() ([]domain.Thread, error)
	MockCreate           func(data domain.ThreadCreationData) (domain.Thread, error)
	MockAddReply         func(thread *domain.Thread, text, deletePassword string) (domain.Reply, error)
	MockDelete           func(id domain.ThreadId) error
	MockValidatePassword func(threadId domain.ThreadId, deletePassword string, replyId domain.ReplyId, isReply bool) (domain.Thread, error)
	MockDeleteReply      func(thread *domain.Thread, replyId domain.ReplyId) error
	MockReportThread     func(id domain.ThreadId) error
	MockReportReply      func(threadId domain.ThreadId, replyId domain.ReplyId) error
}

func (m *MockThreadService) Find(id domain.ThreadId, includePrivate bool) (domain.Thread, error) {
	if m.MockFind != nil {
		return m.MockFind(id, includePrivate)
	}
	return domain.Thread{Id: id, Replies: domain.Replies{}}, nil
}

func (m *MockThreadService) Recent() ([]domain.Thread, error) {
	if m.MockRecent != nil {
		return m.MockRecent()
	}
	return nil, nil
}

func (m *MockThreadService) Create(data domain.ThreadCreationData) (domain.Thread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return domain.Thread{Id: "thread-id", Board: data.Board}, nil
}

func (m *MockThreadService) AddReply(thread *domain.Thread, text, deletePassword string) (domain.Reply, error) {
	if m.MockAddReply != nil {
		return m.MockAddReply(thread, text, deletePassword)
	}
	return domain.Reply{Id: "reply-id", Text: text}, nil
}

func (m *MockThreadService) Delete(id domain.ThreadId) error {
	if m.MockDelete != nil {
		return m.MockDelete(id)
	}
	return nil
}

func (m *MockThreadService) ValidatePassword(threadId domain.ThreadId, deletePassword string, replyId domain.ReplyId, isReply bool) (domain.Thread, error) {
	if m.MockValidatePassword != nil {
		return m.MockValidatePassword(threadId, deletePassword, replyId, isReply)
	}
	return domain.Thread{Id: threadId}, nil
}

func (m *MockThreadService) DeleteReply(thread *domain.Thread, replyId domain.ReplyId) error {
	if m.MockDeleteReply != nil {
		return m.MockDeleteReply(thread, replyId)
	}
	return nil
}

func (m *MockThreadService) ReportThread(id domain.ThreadId) error {
	if m.MockReportThread != nil {
		return m.MockReportThread(id)
	}
	return nil
}

func (m *MockThreadService) ReportReply(threadId domain.ThreadId, replyId domain.ReplyId) error {
	if m.MockReportReply != nil {
		return m.MockReportReply(threadId, replyId)
	}
	return nil
}

// newTestRouter mounts the handler on the API routes used in production.
func newTestRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Route("/threads/{board}", func(r chi.Router) {
			r.Post("/", h.CreateThread)
			r.Get("/", h.GetThreads)
			r.Delete("/", h.DeleteThread)
			r.Put("/", h.ReportThread)
		})
		r.Route("/replies/{board}", func(r chi.Router) {
			r.Post("/", h.CreateReply)
			r.Get("/", h.GetReplies)
			r.Delete("/", h.DeleteReply)
			r.Put("/", h.ReportReply)
		})
	})
	return r
}

func doRequest(t *testing.T, router *chi.Mux, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
