package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the account document stored in the users collection.
// Password holds the bcrypt hash and is never serialized in responses.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	Avatar   string             `bson:"avatar" json:"avatar"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
}
