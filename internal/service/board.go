package service

import (
	"github.com/msgboard-dev/msgboard/internal/domain"
	"github.com/msgboard-dev/msgboard/internal/errors"
)

// to mock service in tests
type BoardService interface {
	FindByName(name domain.BoardName) ([]domain.Board, error)
	Create(name domain.BoardName) (domain.Board, error)
}

type Board struct {
	storage BoardStorage
}

type BoardStorage interface {
	CreateBoard(name domain.BoardName) (domain.Board, error)
	FindBoardsByName(name domain.BoardName) ([]domain.Board, error)
}

func NewBoard(storage BoardStorage) *Board {
	return &Board{storage}
}

// FindByName returns every board with the given name. Callers only
// inspect the first element; name uniqueness makes more than one
// impossible outside a lost create race.
func (b *Board) FindByName(name domain.BoardName) ([]domain.Board, error) {
	if name == "" {
		return nil, errors.Validation("Please include the name of the board to find")
	}
	return b.storage.FindBoardsByName(name)
}

func (b *Board) Create(name domain.BoardName) (domain.Board, error) {
	if name == "" {
		return domain.Board{}, errors.Validation("Please include the name of the board to create")
	}
	return b.storage.CreateBoard(name)
}
