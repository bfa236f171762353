package provider

import (
	"kadai-note/biz/application/service"
	"kadai-note/biz/infrastructure/cache"
	"kadai-note/biz/infrastructure/config"
	"kadai-note/biz/infrastructure/repository/attachment"
	"kadai-note/biz/infrastructure/repository/class"
	"kadai-note/biz/infrastructure/repository/kadai"
	"kadai-note/biz/infrastructure/repository/schedule"
	"kadai-note/biz/infrastructure/repository/studylog"
	"kadai-note/biz/infrastructure/repository/user"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config            *config.Config
	UserService       *service.UserService
	KadaiService      *service.KadaiService
	ClassService      *service.ClassService
	AttachmentService *service.AttachmentService
	ScheduleService   *service.ScheduleService
	TimerService      *service.TimerService
	StudyLogService   *service.StudyLogService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.UserServiceSet,
	service.KadaiServiceSet,
	service.ClassServiceSet,
	service.AttachmentServiceSet,
	service.ScheduleServiceSet,
	service.TimerServiceSet,
	service.StudyLogServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	user.NewMongoMapper,
	kadai.NewMongoMapper,
	class.NewMongoMapper,
	schedule.NewMongoMapper,
	studylog.NewMongoMapper,
	attachment.NewSQLiteMapper,
	cache.NewAttachmentTokenMapper,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
