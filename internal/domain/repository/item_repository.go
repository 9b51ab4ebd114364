package repository

import (
	"context"

	"github.com/wtwr-app/wtwr-backend/internal/domain/entity"
)

// ItemRepository defines the interface for clothing item persistence.
// AddLike and RemoveLike have set semantics: adding an existing like or
// removing an absent one succeeds without changing the document.
type ItemRepository interface {
	List(ctx context.Context) ([]entity.ClothingItem, error)
	Create(ctx context.Context, it *entity.ClothingItem) error
	GetByID(ctx context.Context, id string) (*entity.ClothingItem, error)
	Delete(ctx context.Context, id string) error
	AddLike(ctx context.Context, id, userID string) (*entity.ClothingItem, error)
	RemoveLike(ctx context.Context, id, userID string) (*entity.ClothingItem, error)
}
