package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"artmarket_back_end/internal/models"
)

// Mongo regroupe les trois dépôts au-dessus des collections
// users / listings / carts.
type Mongo struct {
	Users    *MongoUsers
	Listings *MongoListings
	Carts    *MongoCarts
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{
		Users:    &MongoUsers{col: db.Collection("users")},
		Listings: &MongoListings{col: db.Collection("listings")},
		Carts:    &MongoCarts{col: db.Collection("carts")},
	}
}

// EnsureIndexes crée les index uniques sur users.userId et carts.userId.
// Le modèle traite ces champs comme des clés primaires : l'invariant
// doit être tenu par le store, pas par convention.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	userIDKey := bson.D{{Key: "userId", Value: 1}}

	if _, err := m.Users.col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: userIDKey, Options: unique}); err != nil {
		return fmt.Errorf("index users.userId: %w", err)
	}
	if _, err := m.Carts.col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: userIDKey, Options: unique}); err != nil {
		return fmt.Errorf("index carts.userId: %w", err)
	}
	return nil
}

// --- Users ---

type MongoUsers struct {
	col *mongo.Collection
}

func (s *MongoUsers) Insert(ctx context.Context, u *models.User) error {
	res, err := s.col.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

func (s *MongoUsers) FindByUserID(ctx context.Context, userID string) (*models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- Listings ---

type MongoListings struct {
	col *mongo.Collection
}

func (s *MongoListings) Insert(ctx context.Context, l *models.Listing) error {
	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
	}
	_, err := s.col.InsertOne(ctx, l)
	return err
}

func (s *MongoListings) FindByID(ctx context.Context, id string) (*models.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// un id mal formé ne résout rien, même traitement qu'un id absent
		return nil, ErrNotFound
	}

	var l models.Listing
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (s *MongoListings) FindAll(ctx context.Context) ([]models.Listing, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoListings) FindByUserID(ctx context.Context, userID string) ([]models.Listing, error) {
	return s.find(ctx, bson.M{"userId": userID})
}

func (s *MongoListings) find(ctx context.Context, filter bson.M) ([]models.Listing, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	listings := []models.Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (s *MongoListings) Replace(ctx context.Context, id string, l *models.Listing) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	l.ID = oid
	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": oid}, l)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoListings) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Carts ---

type MongoCarts struct {
	col *mongo.Collection
}

func (s *MongoCarts) AddItem(ctx context.Context, userID string, item models.CartItem) (bool, error) {
	// Upsert : le filtre sur userId est recopié dans le document créé,
	// et l'index unique empêche deux paniers pour le même utilisateur.
	filter := bson.M{"userId": userID}
	update := bson.M{"$push": bson.M{"items": item}}
	opts := options.Update().SetUpsert(true)

	res, err := s.col.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

func (s *MongoCarts) Find(ctx context.Context, userID string) (*models.Cart, error) {
	var c models.Cart
	err := s.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *MongoCarts) ReplaceItems(ctx context.Context, userID string, items []models.CartItem) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"items": items}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoCarts) Delete(ctx context.Context, userID string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
