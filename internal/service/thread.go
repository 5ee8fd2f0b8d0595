package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/msgboard-dev/msgboard/internal/domain"
	"github.com/msgboard-dev/msgboard/internal/errors"
)

// ThreadService holds every thread and reply rule: bump-on-reply
// ordering, password-gated deletion, reply soft delete and one-way
// report flags.
type ThreadService interface {
	Find(id domain.ThreadId, includePrivate bool) (domain.Thread, error)
	Recent() ([]domain.Thread, error)
	Create(data domain.ThreadCreationData) (domain.Thread, error)
	AddReply(thread *domain.Thread, text, deletePassword string) (domain.Reply, error)
	Delete(id domain.ThreadId) error
	ValidatePassword(threadId domain.ThreadId, deletePassword string, replyId domain.ReplyId, isReply bool) (domain.Thread, error)
	DeleteReply(thread *domain.Thread, replyId domain.ReplyId) error
	ReportThread(id domain.ThreadId) error
	ReportReply(threadId domain.ThreadId, replyId domain.ReplyId) error
}

type Thread struct {
	storage      ThreadStorage
	recentLimit  int
	previewLimit int
}

type ThreadStorage interface {
	CreateThread(data domain.ThreadCreationData) (domain.Thread, error)
	GetThread(id domain.ThreadId, includePrivate bool) (domain.Thread, error)
	RecentThreads(limit, replyLimit int) ([]domain.Thread, error)
	SaveReplies(thread *domain.Thread) error
	DeleteThread(id domain.ThreadId) error
	ReportThread(id domain.ThreadId) error
}

func NewThread(storage ThreadStorage, recentLimit, previewLimit int) *Thread {
	return &Thread{storage, recentLimit, previewLimit}
}

func (t *Thread) Find(id domain.ThreadId, includePrivate bool) (domain.Thread, error) {
	if id == "" {
		return domain.Thread{}, errors.Validation("Please include the id of the thread to find")
	}
	return t.storage.GetThread(id, includePrivate)
}

// Recent returns the most recently bumped threads, redacted at the
// thread level, each with a preview of its newest replies.
func (t *Thread) Recent() ([]domain.Thread, error) {
	return t.storage.RecentThreads(t.recentLimit, t.previewLimit)
}

func (t *Thread) Create(data domain.ThreadCreationData) (domain.Thread, error) {
	if data.Board == "" || data.Text == "" || data.DeletePassword == "" {
		return domain.Thread{}, errors.Validation("Missing data needed to create the thread")
	}
	return t.storage.CreateThread(data)
}

// AddReply prepends a new reply to the thread, bumps it and re-saves
// the whole replies document.
func (t *Thread) AddReply(thread *domain.Thread, text, deletePassword string) (domain.Reply, error) {
	if thread == nil || text == "" || deletePassword == "" {
		return domain.Reply{}, errors.Validation("Missing data needed to create the reply")
	}

	reply := domain.Reply{
		Id:             uuid.NewString(),
		Text:           text,
		Reported:       false,
		DeletePassword: deletePassword,
		CreatedOn:      time.Now().UTC(),
	}
	thread.AddReply(reply)

	if err := t.storage.SaveReplies(thread); err != nil {
		return domain.Reply{}, err
	}
	return reply, nil
}

func (t *Thread) Delete(id domain.ThreadId) error {
	if id == "" {
		return errors.Validation("Please include the id of the thread to delete")
	}
	return t.storage.DeleteThread(id)
}

// ValidatePassword resolves the thread with private fields and compares
// the given password against the thread's (or, when isReply, the
// reply's) stored one using exact string equality. A mismatch is the
// ErrPasswordMismatch sentinel, not a status-carrying error: callers
// answer it with a plain "incorrect password" message.
func (t *Thread) ValidatePassword(threadId domain.ThreadId, deletePassword string, replyId domain.ReplyId, isReply bool) (domain.Thread, error) {
	thread, err := t.Find(threadId, true)
	if err != nil {
		return domain.Thread{}, err
	}

	comparison := thread.DeletePassword
	if isReply {
		if replyId == "" {
			return domain.Thread{}, errors.Validation("It's not possible to delete a reply without their id")
		}
		reply := thread.Reply(replyId)
		if reply == nil {
			return domain.Thread{}, errors.NotFound("Reply not found")
		}
		comparison = reply.DeletePassword
	}

	if comparison != deletePassword {
		return domain.Thread{}, errors.ErrPasswordMismatch
	}
	return thread, nil
}

// DeleteReply soft deletes: the reply keeps its id, timestamps,
// reported flag and password, only the text becomes the deletion
// marker.
func (t *Thread) DeleteReply(thread *domain.Thread, replyId domain.ReplyId) error {
	if thread == nil || replyId == "" {
		return errors.Validation("Missing data needed to delete the reply")
	}

	reply := thread.Reply(replyId)
	if reply == nil {
		return errors.NotFound("the requested reply was not found on the thread")
	}

	reply.Text = domain.DeletedText
	return t.storage.SaveReplies(thread)
}

func (t *Thread) ReportThread(id domain.ThreadId) error {
	if id == "" {
		return errors.Validation("Missing data needed to update the thread")
	}
	return t.storage.ReportThread(id)
}

// ReportReply flips the reply's reported flag and re-saves the thread.
// Reporting an already-reported reply succeeds identically.
func (t *Thread) ReportReply(threadId domain.ThreadId, replyId domain.ReplyId) error {
	if threadId == "" || replyId == "" {
		return errors.Validation("Missing data needed to update the reply")
	}

	thread, err := t.Find(threadId, false)
	if err != nil {
		return err
	}

	reply := thread.Reply(replyId)
	if reply == nil {
		return errors.NotFound("the requested reply was not found on the thread")
	}

	reply.Reported = true
	return t.storage.SaveReplies(&thread)
}
