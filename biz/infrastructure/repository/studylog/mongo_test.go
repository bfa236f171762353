package studylog

import (
	"testing"

	"kadai-note/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 删除学习记录按 _id + uid 过滤，别人的记录删不掉
func TestOwnedByFilter(t *testing.T) {
	oid := primitive.NewObjectID()
	filter := ownedByFilter(oid, "user_a")

	assert.Len(t, filter, 2)
	assert.Equal(t, oid, filter[consts.ID])
	assert.Equal(t, "user_a", filter[consts.UID])
}
