package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wtwr-app/wtwr-backend/internal/domain/entity"
	"github.com/wtwr-app/wtwr-backend/internal/domain/repository"
	"github.com/wtwr-app/wtwr-backend/internal/errs"
)

// ItemService implements the clothing item domain operations.
type ItemService struct {
	Repo   repository.ItemRepository
	Logger *logrus.Logger
}

func NewItemService(repo repository.ItemRepository, logger *logrus.Logger) *ItemService {
	return &ItemService{Repo: repo, Logger: logger}
}

func (s *ItemService) List(ctx context.Context) ([]entity.ClothingItem, error) {
	items, err := s.Repo.List(ctx)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("list items failed")
		}
		return nil, errs.NewInternalServer()
	}
	return items, nil
}

type CreateItemInput struct {
	Name     string
	Weather  string
	ImageURL string
}

// Create stores a new item owned by the authenticated user.
func (s *ItemService) Create(ctx context.Context, ownerID string, in CreateItemInput) (*entity.ClothingItem, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, errs.NewBadRequest("Invalid user id")
	}
	it := &entity.ClothingItem{
		Name:     in.Name,
		Weather:  in.Weather,
		ImageURL: in.ImageURL,
		Owner:    owner,
	}
	if err := s.Repo.Create(ctx, it); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("create item failed")
		}
		return nil, errs.NewInternalServer()
	}
	return it, nil
}

// Delete removes an item, permitted only to its owner. A non-owner delete is
// Forbidden and leaves the item untouched.
func (s *ItemService) Delete(ctx context.Context, userID, itemID string) error {
	it, err := s.Repo.GetByID(ctx, itemID)
	if err != nil {
		return s.classifyItemErr(err)
	}
	if it.Owner.Hex() != userID {
		return errs.NewForbidden("You can only delete your own items")
	}
	if err := s.Repo.Delete(ctx, itemID); err != nil {
		return s.classifyItemErr(err)
	}
	return nil
}

// Like adds the user to the item's likes set; repeating is a no-op.
func (s *ItemService) Like(ctx context.Context, userID, itemID string) (*entity.ClothingItem, error) {
	it, err := s.Repo.AddLike(ctx, itemID, userID)
	if err != nil {
		return nil, s.classifyItemErr(err)
	}
	return it, nil
}

// Unlike removes the user from the likes set; removing an absent like
// succeeds without change.
func (s *ItemService) Unlike(ctx context.Context, userID, itemID string) (*entity.ClothingItem, error) {
	it, err := s.Repo.RemoveLike(ctx, itemID, userID)
	if err != nil {
		return nil, s.classifyItemErr(err)
	}
	return it, nil
}

func (s *ItemService) classifyItemErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return errs.NewNotFound("Item not found")
	case errors.Is(err, repository.ErrInvalidID):
		return errs.NewBadRequest("Invalid item id")
	default:
		if s.Logger != nil {
			s.Logger.WithError(err).Error("item persistence failure")
		}
		return errs.NewInternalServer()
	}
}
