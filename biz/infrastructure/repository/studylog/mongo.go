package studylog

import (
	"context"
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
	prefixStudyLogCacheKey = "cache:studyLog"
	StudyLogCollectionName = "studyLog"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewStudyLogMongoMapper collection: %s", StudyLogCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, StudyLogCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, l *StudyLog) error {
	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
		l.CreatedAt = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, l)
	return err
}

// FindByUID 按发生时刻倒序分页查询学习记录
func (m *MongoMapper) FindByUID(ctx context.Context, uid string, skip, limit int64) ([]*StudyLog, int64, error) {
	filter := bson.M{consts.UID: uid}

	// 获取总数
	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	var logs []*StudyLog
	err = m.conn.Find(ctx, &logs, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &limit,
		Sort:  bson.M{consts.Date: -1},
	})
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// FindSince 查询发生时刻不早于 since 的记录，升序，供周汇总用
func (m *MongoMapper) FindSince(ctx context.Context, uid string, since time.Time) ([]*StudyLog, error) {
	var logs []*StudyLog
	err := m.conn.Find(ctx, &logs, bson.M{
		consts.UID:  uid,
		consts.Date: bson.M{"$gte": since},
	}, &options.FindOptions{
		Sort: bson.M{consts.Date: 1},
	})
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// ownedByFilter 按id的读写都带上归属者，别人的记录查不到也动不了
func ownedByFilter(oid primitive.ObjectID, uid string) bson.M {
	return bson.M{consts.ID: oid, consts.UID: uid}
}

func (m *MongoMapper) Delete(ctx context.Context, uid string, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, ownedByFilter(oid, uid))
	return err
}
