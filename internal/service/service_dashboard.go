package service

import (
	"context"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

type dashboardService struct {
	userRepository store.UserRepository
	postRepository store.PostRepository
	logger         *logger.Logger
}

func NewDashboardService(userRepository store.UserRepository, postRepository store.PostRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		userRepository: userRepository,
		postRepository: postRepository,
		logger:         logger,
	}
}

// Stats reports user counts per role (every role present, zero when
// nobody holds it) and the number of posts.
func (d *dashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	log := logger.FromContext(ctx)

	byRole, err := d.userRepository.CountUsersByRole(ctx)
	if err != nil {
		log.Err(err).Str("func", "*dashboardService.Stats").Msg("failed to count users")
		return models.DashboardStats{}, storeError(err)
	}

	posts, err := d.postRepository.CountPosts(ctx, "")
	if err != nil {
		log.Err(err).Str("func", "*dashboardService.Stats").Msg("failed to count posts")
		return models.DashboardStats{}, storeError(err)
	}

	stats := models.DashboardStats{
		UsersByRole: make(map[models.Role]int64, len(models.Roles)),
		TotalPosts:  posts,
	}
	for _, role := range models.Roles {
		stats.UsersByRole[role] = byRole[role]
		stats.TotalUsers += byRole[role]
	}

	return stats, nil
}
