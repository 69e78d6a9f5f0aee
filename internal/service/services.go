package service

import (
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/crypto"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
)

type Services struct {
	PostService      PostService
	UserService      UserService
	DashboardService DashboardService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	postService := NewPostValidationService().Wrap(NewPostService(storages.PostRepository, logger))

	return &Services{
		PostService:      postService,
		UserService:      NewUserService(storages.UserRepository, hasher, logger),
		DashboardService: NewDashboardService(storages.UserRepository, storages.PostRepository, logger),
		AppInfoService:   appInfoService,
	}, nil
}
