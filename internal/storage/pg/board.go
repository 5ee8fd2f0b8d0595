package pg

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/msgboard-dev/msgboard/internal/domain"
)

func (s *Storage) CreateBoard(name domain.BoardName) (domain.Board, error) {
	board := domain.Board{Id: uuid.NewString(), Name: name}

	_, err := s.db.Exec("INSERT INTO boards(id, name) VALUES($1, $2)", board.Id, board.Name)
	if err != nil {
		// A concurrent first post to the same name loses the race on the
		// unique constraint. No retry: the failure propagates as-is.
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return domain.Board{}, fmt.Errorf("board %q already exists: %w", name, err)
		}
		return domain.Board{}, fmt.Errorf("failed to insert board: %w", err)
	}

	return board, nil
}

func (s *Storage) FindBoardsByName(name domain.BoardName) ([]domain.Board, error) {
	rows, err := s.db.Query("SELECT id, name FROM boards WHERE name = $1", name)
	if err != nil {
		return nil, fmt.Errorf("failed to query boards: %w", err)
	}
	defer rows.Close()

	var boards []domain.Board
	for rows.Next() {
		var b domain.Board
		if err := rows.Scan(&b.Id, &b.Name); err != nil {
			return nil, fmt.Errorf("failed to scan board: %w", err)
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return boards, nil
}
