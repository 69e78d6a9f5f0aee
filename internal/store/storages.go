package store

import "github.com/MKhiriev/go-blog/internal/logger"

// Storages groups every repository backed by one database.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
	}
}
