package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wtwr-app/wtwr-backend/internal/application"
	"github.com/wtwr-app/wtwr-backend/internal/domain/entity"
	"github.com/wtwr-app/wtwr-backend/internal/domain/repository"
	"github.com/wtwr-app/wtwr-backend/internal/errs"
	handlers "github.com/wtwr-app/wtwr-backend/internal/interface/http"
	"github.com/wtwr-app/wtwr-backend/internal/interface/middleware"
	"github.com/wtwr-app/wtwr-backend/internal/router"
	"github.com/wtwr-app/wtwr-backend/internal/router/modules"
	"github.com/wtwr-app/wtwr-backend/pkg/helpers"
	"github.com/wtwr-app/wtwr-backend/pkg/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	m.Run()
}

func newTestServer() *gin.Engine {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	jwt := helpers.NewJWTManager("test-secret", time.Hour)

	userSvc := application.NewUserService(newMemUserRepo(), jwt, logger)
	itemSvc := application.NewItemService(newMemItemRepo(), logger)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler(logger))

	reg := router.NewRegistry(r)
	reg.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc), jwt))
	reg.Add(modules.NewItemModule(handlers.NewItemHandler(itemSvc), jwt))
	reg.RegisterAll()

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(errs.NewNotFound("Requested resource not found"))
	})
	return r
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body
}

func signup(t *testing.T, r *gin.Engine, email string) map[string]any {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/signup", "", gin.H{
		"name": "Al", "avatar": "http://x.com/a.png", "email": email, "password": "password1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d (body %s)", w.Code, w.Body.String())
	}
	return decode(t, w)
}

func signin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/signin", "", gin.H{"email": email, "password": "password1"})
	if w.Code != http.StatusOK {
		t.Fatalf("signin: expected 200, got %d (body %s)", w.Code, w.Body.String())
	}
	token, _ := decode(t, w)["token"].(string)
	if token == "" {
		t.Fatal("signin: expected token in body")
	}
	return token
}

func TestSignupSigninItemsScenario(t *testing.T) {
	r := newTestServer()

	created := signup(t, r, "a@a.com")
	if _, ok := created["password"]; ok {
		t.Fatal("signup body must not contain a password key")
	}
	if created["email"] != "a@a.com" || created["name"] != "Al" {
		t.Fatalf("unexpected signup body: %v", created)
	}

	signin(t, r, "a@a.com")

	w := doJSON(r, http.MethodGet, "/items", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /items must never require auth, got %d", w.Code)
	}
	var items []any
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("expected a JSON list, got %q", w.Body.String())
	}
	if len(items) != 0 {
		t.Fatalf("expected empty store, got %d items", len(items))
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	r := newTestServer()
	signup(t, r, "a@a.com")

	w := doJSON(r, http.MethodPost, "/signup", "", gin.H{
		"name": "Al", "email": "a@a.com", "password": "password1",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestSignupValidationAggregatesViolations(t *testing.T) {
	r := newTestServer()
	w := doJSON(r, http.MethodPost, "/signup", "", gin.H{
		"name": "A", "email": "not-an-email", "password": "short",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	msg, _ := decode(t, w)["message"].(string)
	for _, field := range []string{"name", "email", "password"} {
		if !bytes.Contains([]byte(msg), []byte(field)) {
			t.Fatalf("expected message to mention %q, got %q", field, msg)
		}
	}
}

func TestMeRoundTripNeverExposesPassword(t *testing.T) {
	r := newTestServer()
	signup(t, r, "a@a.com")
	token := signin(t, r, "a@a.com")

	w := doJSON(r, http.MethodGet, "/users/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if _, ok := body["password"]; ok {
		t.Fatal("profile body must not contain a password key")
	}
	if body["email"] != "a@a.com" {
		t.Fatalf("unexpected profile: %v", body)
	}

	w = doJSON(r, http.MethodGet, "/users/me", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
	if msg := decode(t, w)["message"]; msg != "Authorization Required" {
		t.Fatalf("expected exact auth message, got %v", msg)
	}
}

func TestUpdateProfile(t *testing.T) {
	r := newTestServer()
	signup(t, r, "a@a.com")
	token := signin(t, r, "a@a.com")

	w := doJSON(r, http.MethodPatch, "/users/me", token, gin.H{
		"name": "Alice", "avatar": "http://x.com/new.png",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["name"] != "Alice" || body["avatar"] != "http://x.com/new.png" {
		t.Fatalf("unexpected updated profile: %v", body)
	}
}

func TestCreateItemValidation(t *testing.T) {
	r := newTestServer()
	signup(t, r, "a@a.com")
	token := signin(t, r, "a@a.com")

	w := doJSON(r, http.MethodPost, "/items", token, gin.H{
		"name": "Sunhat", "weather": "sunny", "imageUrl": "http://x.com/hat.png",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for weather outside enum, got %d (body %s)", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodPost, "/items", "", gin.H{
		"name": "Sunhat", "weather": "hot", "imageUrl": "http://x.com/hat.png",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth, got %d", w.Code)
	}
}

func TestItemLifecycle(t *testing.T) {
	r := newTestServer()
	signup(t, r, "a@a.com")
	token := signin(t, r, "a@a.com")

	w := doJSON(r, http.MethodPost, "/items", token, gin.H{
		"name": "Raincoat", "weather": "warm", "imageUrl": "http://x.com/coat.png",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body %s)", w.Code, w.Body.String())
	}
	itemID, _ := decode(t, w)["_id"].(string)
	if itemID == "" {
		t.Fatal("expected created item id")
	}

	// repeated likes keep set semantics
	for i := 0; i < 2; i++ {
		w = doJSON(r, http.MethodPut, "/items/"+itemID+"/likes", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("like: expected 200, got %d", w.Code)
		}
	}
	likes, _ := decode(t, w)["likes"].([]any)
	if len(likes) != 1 {
		t.Fatalf("expected 1 like after repeats, got %d", len(likes))
	}

	// unliking twice is a no-op success
	for i := 0; i < 2; i++ {
		w = doJSON(r, http.MethodDelete, "/items/"+itemID+"/likes", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("unlike: expected 200, got %d", w.Code)
		}
	}

	w = doJSON(r, http.MethodDelete, "/items/"+itemID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}

	w = doJSON(r, http.MethodDelete, "/items/"+itemID, token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", w.Code)
	}
}

func TestDeleteForeignItemForbidden(t *testing.T) {
	r := newTestServer()
	signup(t, r, "owner@a.com")
	ownerToken := signin(t, r, "owner@a.com")
	signup(t, r, "other@a.com")
	otherToken := signin(t, r, "other@a.com")

	w := doJSON(r, http.MethodPost, "/items", ownerToken, gin.H{
		"name": "Raincoat", "weather": "warm", "imageUrl": "http://x.com/coat.png",
	})
	itemID, _ := decode(t, w)["_id"].(string)

	w = doJSON(r, http.MethodDelete, "/items/"+itemID, otherToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d (body %s)", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/items", "", nil)
	var items []any
	_ = json.Unmarshal(w.Body.Bytes(), &items)
	if len(items) != 1 {
		t.Fatalf("expected item to survive foreign delete, got %d items", len(items))
	}
}

func TestDeleteItemIDErrors(t *testing.T) {
	r := newTestServer()
	signup(t, r, "a@a.com")
	token := signin(t, r, "a@a.com")

	w := doJSON(r, http.MethodDelete, "/items/000000000000000000000000", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for nonexistent hex id, got %d", w.Code)
	}

	w = doJSON(r, http.MethodDelete, "/items/not-a-hex-id", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", w.Code)
	}
}

func TestUnmatchedRoute(t *testing.T) {
	r := newTestServer()
	w := doJSON(r, http.MethodGet, "/nonsense", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if msg := decode(t, w)["message"]; msg != "Requested resource not found" {
		t.Fatalf("unexpected message %v", msg)
	}
}

// In-memory repositories backing the wired engine under test.

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: map[string]*entity.User{}} }

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
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

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
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

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) UpdateProfile(_ context.Context, id, name, avatar string) (*entity.User, error) {
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

var _ repository.UserRepository = (*memUserRepo)(nil)

type memItemRepo struct {
	items map[string]*entity.ClothingItem
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: map[string]*entity.ClothingItem{}}
}

func (r *memItemRepo) List(_ context.Context) ([]entity.ClothingItem, error) {
	out := []entity.ClothingItem{}
	for _, it := range r.items {
		out = append(out, *it)
	}
	return out, nil
}

func (r *memItemRepo) Create(_ context.Context, it *entity.ClothingItem) error {
	it.ID = primitive.NewObjectID()
	if it.Likes == nil {
		it.Likes = []primitive.ObjectID{}
	}
	cp := *it
	r.items[it.ID.Hex()] = &cp
	return nil
}

func (r *memItemRepo) GetByID(_ context.Context, id string) (*entity.ClothingItem, error) {
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

func (r *memItemRepo) Delete(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrInvalidID
	}
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memItemRepo) AddLike(_ context.Context, id, userID string) (*entity.ClothingItem, error) {
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

func (r *memItemRepo) RemoveLike(_ context.Context, id, userID string) (*entity.ClothingItem, error) {
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

func (r *memItemRepo) likeTarget(id, userID string) (*entity.ClothingItem, primitive.ObjectID, error) {
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

var _ repository.ItemRepository = (*memItemRepo)(nil)
