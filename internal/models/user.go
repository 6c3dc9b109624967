package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User : profil vendeur/acheteur créé à l'inscription, jamais modifié ensuite.
// UserId est la clé externe (index unique côté Mongo).
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID   string             `bson:"userId" json:"UserId"`
	FullName string             `bson:"fullName" json:"fullName"`
	Email    string             `bson:"email" json:"Email"`
	ImageURL string             `bson:"imageurl" json:"imageurl"`
	Username string             `bson:"username" json:"username"`
}
