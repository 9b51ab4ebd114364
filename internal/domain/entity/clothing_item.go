package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Weather values a clothing item can be suited for.
const (
	WeatherHot  = "hot"
	WeatherWarm = "warm"
	WeatherCold = "cold"
)

// ClothingItem is the item document stored in the items collection.
// Owner is set at creation and immutable; Likes behaves as a set of user
// references, deduplicated by the store.
type ClothingItem struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name      string               `bson:"name" json:"name"`
	Weather   string               `bson:"weather" json:"weather"`
	ImageURL  string               `bson:"imageUrl" json:"imageUrl"`
	Owner     primitive.ObjectID   `bson:"owner" json:"owner"`
	Likes     []primitive.ObjectID `bson:"likes" json:"likes"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
}

// LikedBy reports whether the given user id is present in the likes set.
func (c *ClothingItem) LikedBy(userID primitive.ObjectID) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
