package provider

import (
	"campus-lms/biz/application/service"
	"campus-lms/biz/infrastructure/cache"
	"campus-lms/biz/infrastructure/config"
	"campus-lms/biz/infrastructure/repository/assignment"
	"campus-lms/biz/infrastructure/repository/course"
	"campus-lms/biz/infrastructure/repository/user"

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
	AuthService       service.AuthService
	UserService       service.UserService
	CourseService     service.CourseService
	AssignmentService service.AssignmentService
	ChatService       service.ChatService
	StsService        service.StsService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.AuthServiceSet,
	service.UserServiceSet,
	service.CourseServiceSet,
	service.AssignmentServiceSet,
	service.ChatServiceSet,
	service.StsServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	user.NewMongoMapper,
	course.NewMongoMapper,
	assignment.NewMongoMapper,
	cache.NewChatSessionCacheMapper,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
