package studylog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudyLog 一次学习计时的不可变记录，stop 时写入，只能整条删除
type StudyLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UID       string             `bson:"uid" json:"uid"`
	Subject   string             `bson:"subject" json:"subject"`
	Seconds   int64              `bson:"seconds" json:"seconds"`
	Date      time.Time          `bson:"date" json:"date"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
