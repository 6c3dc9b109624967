package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Cart : un document par utilisateur (index unique sur userId).
// Panier vide == document absent : on supprime le document quand
// le dernier article est retiré.
type Cart struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID string             `bson:"userId" json:"userId"`
	Items  []CartItem         `bson:"items" json:"items"`
}

// CartItem : instantané dénormalisé de l'œuvre au moment de l'ajout,
// pas une jointure vivante. Deux ajouts de la même œuvre donnent
// deux lignes.
type CartItem struct {
	ArtID string  `bson:"artId" json:"artId"`
	Title string  `bson:"title" json:"title"`
	Price float64 `bson:"price" json:"price"`
	Image string  `bson:"image" json:"image"`
}
