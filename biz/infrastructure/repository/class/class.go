package class

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Class 一门授业，memo 为可选的自由文本备忘
type Class struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UID       string             `bson:"uid" json:"uid"`
	Name      string             `bson:"name" json:"name"`
	Memo      string             `bson:"memo,omitempty" json:"memo,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
