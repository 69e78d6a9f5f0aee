package http

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/models"
)

// SessionStore is the subset of the session store used by the page
// controllers.
type SessionStore interface {
	Create(userID int64, username string, role models.Role) (string, error)
	Lookup(token string) (models.Session, bool)
	Destroy(token string)
}

type Handler struct {
	services *service.Services
	sessions SessionStore
	pages    pages

	secureCookies  bool
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions SessionStore, cfg config.Server, logger *logger.Logger) (*Handler, error) {
	p, err := parsePages()
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		sessions:       sessions,
		pages:          p,
		secureCookies:  cfg.SecureCookies,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}, nil
}
