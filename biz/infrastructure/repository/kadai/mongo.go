package kadai

import (
	"context"
	"errors"
	"kadai-note/biz/infrastructure/config"
	"kadai-note/biz/infrastructure/consts"
	"kadai-note/biz/infrastructure/util/log"
	"time"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixKadaiCacheKey = "cache:kadai"
	KadaiCollectionName = "kadai"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewKadaiMongoMapper collection: %s", KadaiCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, KadaiCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

// ownedByFilter 按id的读写都带上归属者，别人的记录查不到也动不了
func ownedByFilter(oid primitive.ObjectID, uid string) bson.M {
	return bson.M{consts.ID: oid, consts.UID: uid}
}

func (m *MongoMapper) Insert(ctx context.Context, k *Kadai) error {
	if k.ID.IsZero() {
		k.ID = primitive.NewObjectID()
		k.CreatedAt = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, k)
	return err
}

// FindByUID 按完成状态查询某个用户的课题，截止日升序
func (m *MongoMapper) FindByUID(ctx context.Context, uid string, done bool) ([]*Kadai, error) {
	var kadais []*Kadai
	filter := bson.M{consts.UID: uid, consts.Done: done}

	err := m.conn.Find(ctx, &kadais, filter, &options.FindOptions{
		Sort: bson.M{consts.Due: 1},
	})
	if err != nil {
		return nil, err
	}
	return kadais, nil
}

func (m *MongoMapper) FindOne(ctx context.Context, uid string, id string) (*Kadai, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var k Kadai
	err = m.conn.FindOneNoCache(ctx, &k, ownedByFilter(oid, uid))
	switch {
	case err == nil:
		return &k, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

// MarkDone 置完成标记，重复调用只是覆盖同样的值。
// 非归属者的记录匹配不上，写不生效
func (m *MongoMapper) MarkDone(ctx context.Context, uid string, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateOneNoCache(ctx, ownedByFilter(oid, uid), bson.M{
		"$set": bson.M{
			consts.Done:   true,
			consts.DoneAt: time.Now(),
		},
	})
	return err
}

func (m *MongoMapper) Delete(ctx context.Context, uid string, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, ownedByFilter(oid, uid))
	return err
}
