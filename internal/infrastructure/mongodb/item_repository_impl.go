package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wtwr-app/wtwr-backend/internal/domain/entity"
	"github.com/wtwr-app/wtwr-backend/internal/domain/repository"
)

type ItemRepository struct {
	col     *mongo.Collection
	timeout time.Duration
}

func NewItemRepository(db *mongo.Database, timeout time.Duration) *ItemRepository {
	return &ItemRepository{col: db.Collection(itemsCollection), timeout: timeout}
}

func (r *ItemRepository) List(ctx context.Context) ([]entity.ClothingItem, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	items := []entity.ClothingItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepository) Create(ctx context.Context, it *entity.ClothingItem) error {
	if it.Likes == nil {
		it.Likes = []primitive.ObjectID{}
	}
	if it.CreatedAt.IsZero() {
		it.CreatedAt = time.Now().UTC()
	}
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, it)
	if err != nil {
		return err
	}
	it.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id string) (*entity.ClothingItem, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	it := &entity.ClothingItem{}
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(it); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return it, nil
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// AddLike inserts the user reference with $addToSet, so repeating a like
// never duplicates it.
func (r *ItemRepository) AddLike(ctx context.Context, id, userID string) (*entity.ClothingItem, error) {
	return r.updateLikes(ctx, id, userID, "$addToSet")
}

// RemoveLike pulls the user reference; removing an absent like is a no-op.
func (r *ItemRepository) RemoveLike(ctx context.Context, id, userID string) (*entity.ClothingItem, error) {
	return r.updateLikes(ctx, id, userID, "$pull")
}

func (r *ItemRepository) updateLikes(ctx context.Context, id, userID, op string) (*entity.ClothingItem, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	uid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	it := &entity.ClothingItem{}
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{op: bson.M{"likes": uid}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(it)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return it, nil
}

var _ repository.ItemRepository = (*ItemRepository)(nil)
