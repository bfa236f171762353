package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"kadai-note/biz/infrastructure/config"
	"kadai-note/biz/infrastructure/redis"

	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	attachmentTokenCachePrefix = "attachment_token"
)

// AttachmentRef 一次性图片链接指向的附件位置
type AttachmentRef struct {
	ClassID  string `json:"classId"`
	Position int    `json:"position"`
}

type IAttachmentTokenMapper interface {
	Get(ctx context.Context, token string) (*AttachmentRef, error)
	Set(ctx context.Context, token string, ref *AttachmentRef) error
	Delete(ctx context.Context, token string) error
}

// AttachmentTokenMapper 管理图片的临时访问令牌。
// list 时为每个附件生成一个带过期时间的令牌，过期或删除即失效，
// 客户端用完不再展示时应主动释放
type AttachmentTokenMapper struct {
	rds *gozero_redis.Redis
}

func NewAttachmentTokenMapper(config *config.Config) *AttachmentTokenMapper {
	return &AttachmentTokenMapper{
		rds: redis.GetRedis(config),
	}
}

// Get 解析令牌，未命中视为已失效
func (m *AttachmentTokenMapper) Get(ctx context.Context, token string) (*AttachmentRef, error) {
	cacheKey := m.buildCacheKey(token)

	cachedData, err := m.rds.GetCtx(ctx, cacheKey)
	if err != nil {
		return nil, err
	}

	if cachedData == "" {
		return nil, fmt.Errorf("cache miss")
	}

	var ref AttachmentRef
	if err := json.Unmarshal([]byte(cachedData), &ref); err != nil {
		return nil, fmt.Errorf("unmarshal cached data failed: %w", err)
	}

	return &ref, nil
}

// Set 登记令牌，有效期见 config.AttachmentTokenExpire
func (m *AttachmentTokenMapper) Set(ctx context.Context, token string, ref *AttachmentRef) error {
	cacheKey := m.buildCacheKey(token)

	refBytes, err := json.Marshal(ref)
	if err != nil {
		return fmt.Errorf("marshal ref failed: %w", err)
	}

	return m.rds.SetexCtx(ctx, cacheKey, string(refBytes), config.AttachmentTokenExpire)
}

// Delete 主动吊销令牌
func (m *AttachmentTokenMapper) Delete(ctx context.Context, token string) error {
	cacheKey := m.buildCacheKey(token)
	_, err := m.rds.DelCtx(ctx, cacheKey)
	return err
}

// buildCacheKey 构造缓存key
func (m *AttachmentTokenMapper) buildCacheKey(token string) string {
	return fmt.Sprintf("%s:%s", attachmentTokenCachePrefix, token)
}
