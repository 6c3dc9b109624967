package store

import (
	"context"
	"errors"

	"artmarket_back_end/internal/models"
)

var (
	// ErrNotFound : l'id référencé ne résout aucun document.
	ErrNotFound = errors.New("document introuvable")
	// ErrDuplicate : violation d'un index unique (UserId déjà pris).
	ErrDuplicate = errors.New("document déjà existant")
)

type UserStore interface {
	Insert(ctx context.Context, u *models.User) error
	FindByUserID(ctx context.Context, userID string) (*models.User, error)
}

type ListingStore interface {
	Insert(ctx context.Context, l *models.Listing) error
	FindByID(ctx context.Context, id string) (*models.Listing, error)
	FindAll(ctx context.Context) ([]models.Listing, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Listing, error)
	Replace(ctx context.Context, id string, l *models.Listing) error
	Delete(ctx context.Context, id string) error
}

type CartStore interface {
	// AddItem ajoute la ligne au panier de l'utilisateur, en créant le
	// document si besoin (upsert : deux premiers ajouts concurrents
	// convergent sur le même document). created vaut true si le panier
	// vient d'être créé.
	AddItem(ctx context.Context, userID string, item models.CartItem) (created bool, err error)
	Find(ctx context.Context, userID string) (*models.Cart, error)
	ReplaceItems(ctx context.Context, userID string, items []models.CartItem) error
	Delete(ctx context.Context, userID string) error
}
