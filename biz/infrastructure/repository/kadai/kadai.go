package kadai

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kadai 一条课题记录，字段名沿用既有集合的约定
type Kadai struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UID       string             `bson:"uid" json:"uid"`
	Title     string             `bson:"title" json:"title"`
	Due       time.Time          `bson:"due" json:"due"`
	Done      bool               `bson:"done" json:"done"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	DoneAt    *time.Time         `bson:"doneAt,omitempty" json:"doneAt,omitempty"`
}
