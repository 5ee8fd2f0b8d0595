package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/msgboard-dev/msgboard/internal/domain"
	internal_errors "github.com/msgboard-dev/msgboard/internal/errors"
)

func (s *Storage) CreateThread(data domain.ThreadCreationData) (domain.Thread, error) {
	now := time.Now().UTC()
	thread := domain.Thread{
		Id:             uuid.NewString(),
		Board:          data.Board,
		Text:           data.Text,
		DeletePassword: data.DeletePassword,
		CreatedOn:      now,
		BumpedOn:       now,
		Reported:       false,
		Replies:        domain.Replies{},
	}

	_, err := s.db.Exec(`
        INSERT INTO threads (id, board, text, delete_password, created_on, bumped_on, reported, replies)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, thread.Id, thread.Board, thread.Text, thread.DeletePassword,
		thread.CreatedOn, thread.BumpedOn, thread.Reported, thread.Replies)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to insert thread: %w", err)
	}

	return thread, nil
}

// GetThread fetches one thread. Redacted reads never select the
// thread-level reported and delete_password columns; the replies
// document is returned whole either way, so reply-level fields stay
// visible on redacted reads too.
func (s *Storage) GetThread(id domain.ThreadId, includePrivate bool) (domain.Thread, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Thread{}, internal_errors.NotFound("Thread not found")
	}

	var thread domain.Thread
	var err error
	if includePrivate {
		err = s.db.QueryRow(`
            SELECT id, board, text, delete_password, created_on, bumped_on, reported, replies
            FROM threads
            WHERE id = $1
        `, id).Scan(
			&thread.Id, &thread.Board, &thread.Text, &thread.DeletePassword,
			&thread.CreatedOn, &thread.BumpedOn, &thread.Reported, &thread.Replies,
		)
	} else {
		err = s.db.QueryRow(`
            SELECT id, board, text, created_on, bumped_on, replies
            FROM threads
            WHERE id = $1
        `, id).Scan(
			&thread.Id, &thread.Board, &thread.Text,
			&thread.CreatedOn, &thread.BumpedOn, &thread.Replies,
		)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, internal_errors.NotFound("Thread not found")
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}

	return thread, nil
}

// RecentThreads lists at most limit threads by bumped_on descending,
// redacted at the thread level, each carrying at most replyLimit of
// its newest replies.
func (s *Storage) RecentThreads(limit, replyLimit int) ([]domain.Thread, error) {
	rows, err := s.db.Query(`
        SELECT id, board, text, created_on, bumped_on, replies
        FROM threads
        ORDER BY bumped_on DESC
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent threads: %w", err)
	}
	defer rows.Close()

	var threads []domain.Thread
	for rows.Next() {
		var thread domain.Thread
		if err := rows.Scan(
			&thread.Id, &thread.Board, &thread.Text,
			&thread.CreatedOn, &thread.BumpedOn, &thread.Replies,
		); err != nil {
			return nil, fmt.Errorf("failed to scan thread: %w", err)
		}
		// Replies are stored newest first, so the preview is a prefix.
		if len(thread.Replies) > replyLimit {
			thread.Replies = thread.Replies[:replyLimit]
		}
		threads = append(threads, thread)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return threads, nil
}

// SaveReplies writes thread's whole replies document and bumped_on
// back to the row. This is a full-document re-save, not a
// compare-and-swap: concurrent mutations of the same thread can lose
// the earlier write, same as the system this one replaces.
func (s *Storage) SaveReplies(thread *domain.Thread) error {
	result, err := s.db.Exec(`
        UPDATE threads SET replies = $1, bumped_on = $2 WHERE id = $3
    `, thread.Replies, thread.BumpedOn, thread.Id)
	if err != nil {
		return fmt.Errorf("failed to save replies: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NotFound("Thread not found")
	}
	return nil
}

func (s *Storage) DeleteThread(id domain.ThreadId) error {
	if _, err := uuid.Parse(id); err != nil {
		return internal_errors.NotFound("Thread not found")
	}

	result, err := s.db.Exec("DELETE FROM threads WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete thread: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NotFound("Thread not found")
	}
	return nil
}

// ReportThread flips reported to true unconditionally, so reporting an
// already-reported thread succeeds identically.
func (s *Storage) ReportThread(id domain.ThreadId) error {
	if _, err := uuid.Parse(id); err != nil {
		return internal_errors.NotFound("Thread not found")
	}

	result, err := s.db.Exec("UPDATE threads SET reported = true WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to report thread: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NotFound("Thread not found")
	}
	return nil
}
