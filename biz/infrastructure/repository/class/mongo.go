package class

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
)

const (
	prefixClassCacheKey = "cache:class"
	ClassCollectionName = "classes"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewClassMongoMapper collection: %s", ClassCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, ClassCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, class *Class) error {
	if class.ID.IsZero() {
		class.ID = primitive.NewObjectID()
		class.CreatedAt = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, class)
	return err
}

// ownedByFilter 按id的读写都带上归属者，别人的记录查不到也动不了
func ownedByFilter(oid primitive.ObjectID, uid string) bson.M {
	return bson.M{consts.ID: oid, consts.UID: uid}
}

func (m *MongoMapper) FindOne(ctx context.Context, uid string, id string) (*Class, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var c Class
	err = m.conn.FindOneNoCache(ctx, &c, ownedByFilter(oid, uid))
	switch {
	case err == nil:
		return &c, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

// FindByUID 查询某个用户的全部授业，排序由上层按日语排序规则处理
func (m *MongoMapper) FindByUID(ctx context.Context, uid string) ([]*Class, error) {
	var classes []*Class
	err := m.conn.Find(ctx, &classes, bson.M{consts.UID: uid}, nil)
	if err != nil {
		return nil, err
	}
	return classes, nil
}

// UpdateMemo 只合并 memo 字段，不触碰记录的其他字段
func (m *MongoMapper) UpdateMemo(ctx context.Context, uid string, id string, memo string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateOneNoCache(ctx, ownedByFilter(oid, uid), bson.M{
		"$set": bson.M{
			consts.Memo: memo,
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
