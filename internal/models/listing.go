package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Listing : œuvre mise en vente. Le champ userId référence User.UserId
// (clé informelle, vérifiée au niveau service et pas par le store).
type Listing struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Category    string             `bson:"category" json:"category"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Images      []string           `bson:"images" json:"images"`
	UserID      string             `bson:"userId" json:"userId"`
}
