package repository

import (
	"afisha/internal/models"
	"afisha/internal/store"
)

type CinemaRepository struct {
	db *store.Store
}

func NewCinemaRepository(db *store.Store) *CinemaRepository {
	return &CinemaRepository{db: db}
}

// GetOrCreate returns the aggregate for the given cinema name, creating it
// lazily on first reference. Cinemas are never deleted.
func (r *CinemaRepository) GetOrCreate(name string) *models.Cinema {
	return r.db.GetOrCreateCinema(name)
}

func (r *CinemaRepository) All() []*models.Cinema {
	return r.db.AllCinemas()
}
