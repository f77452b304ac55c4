package contract

import (
	"context"

	"style-match-be/internal/entity"
)

type PinRepository interface {
	// ReplaceBoard swaps the stored pin set of a board for pins, wholesale.
	ReplaceBoard(ctx context.Context, boardId string, pins []*entity.Pin) error
	// FindByBoard returns the pins of the last import in import order.
	FindByBoard(ctx context.Context, boardId string) ([]*entity.Pin, error)
	// Location describes where a board's pins are persisted.
	Location(boardId string) string
}
