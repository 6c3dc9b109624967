package handlers

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"artmarket_back_end/internal/models"
	"artmarket_back_end/internal/store"
)

// Dépôts en mémoire reproduisant les sémantiques du store Mongo
// (unicité par userId, panier absent == introuvable).

type fakeUserStore struct {
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) Insert(_ context.Context, u *models.User) error {
	if _, ok := f.users[u.UserID]; ok {
		return store.ErrDuplicate
	}
	u.ID = primitive.NewObjectID()
	f.users[u.UserID] = *u
	return nil
}

func (f *fakeUserStore) FindByUserID(_ context.Context, userID string) (*models.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

type fakeListingStore struct {
	listings map[string]models.Listing
}

func newFakeListingStore() *fakeListingStore {
	return &fakeListingStore{listings: map[string]models.Listing{}}
}

func (f *fakeListingStore) Insert(_ context.Context, l *models.Listing) error {
	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
	}
	f.listings[l.ID.Hex()] = *l
	return nil
}

func (f *fakeListingStore) FindByID(_ context.Context, id string) (*models.Listing, error) {
	l, ok := f.listings[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &l, nil
}

func (f *fakeListingStore) FindAll(_ context.Context) ([]models.Listing, error) {
	out := []models.Listing{}
	for _, l := range f.listings {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeListingStore) FindByUserID(_ context.Context, userID string) ([]models.Listing, error) {
	out := []models.Listing{}
	for _, l := range f.listings {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeListingStore) Replace(_ context.Context, id string, l *models.Listing) error {
	existing, ok := f.listings[id]
	if !ok {
		return store.ErrNotFound
	}
	l.ID = existing.ID
	f.listings[id] = *l
	return nil
}

func (f *fakeListingStore) Delete(_ context.Context, id string) error {
	if _, ok := f.listings[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.listings, id)
	return nil
}

type fakeCartStore struct {
	carts map[string][]models.CartItem
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: map[string][]models.CartItem{}}
}

func (f *fakeCartStore) AddItem(_ context.Context, userID string, item models.CartItem) (bool, error) {
	_, exists := f.carts[userID]
	f.carts[userID] = append(f.carts[userID], item)
	return !exists, nil
}

func (f *fakeCartStore) Find(_ context.Context, userID string) (*models.Cart, error) {
	items, ok := f.carts[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &models.Cart{UserID: userID, Items: items}, nil
}

func (f *fakeCartStore) ReplaceItems(_ context.Context, userID string, items []models.CartItem) error {
	if _, ok := f.carts[userID]; !ok {
		return store.ErrNotFound
	}
	f.carts[userID] = items
	return nil
}

func (f *fakeCartStore) Delete(_ context.Context, userID string) error {
	if _, ok := f.carts[userID]; !ok {
		return store.ErrNotFound
	}
	delete(f.carts, userID)
	return nil
}

type fakeUploader struct {
	folder string
	calls  int
	err    error
}

func (f *fakeUploader) UploadImages(_ context.Context, folder string, files []*multipart.FileHeader) ([]string, error) {
	f.folder = folder
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	urls := make([]string, len(files))
	for i, fh := range files {
		urls[i] = fmt.Sprintf("https://img.example.com/%s/%s", folder, fh.Filename)
	}
	return urls, nil
}

var errUploadDown = errors.New("hébergeur d'images indisponible")
