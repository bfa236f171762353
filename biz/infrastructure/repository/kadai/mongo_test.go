package kadai

import (
	"testing"

	"kadai-note/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 按id操作的过滤条件必须同时带上归属者，防止跨用户改动
func TestOwnedByFilter(t *testing.T) {
	oid := primitive.NewObjectID()
	filter := ownedByFilter(oid, "user_a")

	assert.Len(t, filter, 2)
	assert.Equal(t, oid, filter[consts.ID])
	assert.Equal(t, "user_a", filter[consts.UID])
}
