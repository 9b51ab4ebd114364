package application

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wtwr-app/wtwr-backend/internal/domain/entity"
	"github.com/wtwr-app/wtwr-backend/internal/domain/repository"
)

// In-memory repositories mirroring the mongodb implementations' contracts:
// hex-parse validation, sentinel errors, and set semantics for likes.

type fakeUserRepo struct {
	users map[string]*entity.User // keyed by hex id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	u.ID = primitive.NewObjectID()
	cp := *u
	r.users[u.ID.Hex()] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id, name, avatar string) (*entity.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.Name = name
	u.Avatar = avatar
	cp := *u
	return &cp, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

type fakeItemRepo struct {
	items map[string]*entity.ClothingItem
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[string]*entity.ClothingItem{}}
}

func (r *fakeItemRepo) List(_ context.Context) ([]entity.ClothingItem, error) {
	out := []entity.ClothingItem{}
	for _, it := range r.items {
		out = append(out, *it)
	}
	return out, nil
}

func (r *fakeItemRepo) Create(_ context.Context, it *entity.ClothingItem) error {
	it.ID = primitive.NewObjectID()
	if it.Likes == nil {
		it.Likes = []primitive.ObjectID{}
	}
	cp := *it
	r.items[it.ID.Hex()] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id string) (*entity.ClothingItem, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	it, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrInvalidID
	}
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) AddLike(_ context.Context, id, userID string) (*entity.ClothingItem, error) {
	it, uid, err := r.likeTarget(id, userID)
	if err != nil {
		return nil, err
	}
	if !it.LikedBy(uid) {
		it.Likes = append(it.Likes, uid)
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) RemoveLike(_ context.Context, id, userID string) (*entity.ClothingItem, error) {
	it, uid, err := r.likeTarget(id, userID)
	if err != nil {
		return nil, err
	}
	kept := it.Likes[:0]
	for _, l := range it.Likes {
		if l != uid {
			kept = append(kept, l)
		}
	}
	it.Likes = kept
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) likeTarget(id, userID string) (*entity.ClothingItem, primitive.ObjectID, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, primitive.NilObjectID, repository.ErrInvalidID
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, primitive.NilObjectID, repository.ErrInvalidID
	}
	it, ok := r.items[id]
	if !ok {
		return nil, primitive.NilObjectID, repository.ErrNotFound
	}
	return it, uid, nil
}

var _ repository.ItemRepository = (*fakeItemRepo)(nil)
