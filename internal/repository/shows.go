package repository

import (
	"afisha/internal/models"
	"afisha/internal/store"
)

type ShowRepository struct {
	db *store.Store
}

func NewShowRepository(db *store.Store) *ShowRepository {
	return &ShowRepository{db: db}
}

func (r *ShowRepository) Add(show *models.Show) {
	r.db.AddShow(show)
}

func (r *ShowRepository) GetByID(id string) (*models.Show, error) {
	return r.db.GetShow(id)
}

// Find returns the shows matching movie and scheduling string exactly.
func (r *ShowRepository) Find(movie, when string) []*models.Show {
	return r.db.FindShows(movie, when)
}

func (r *ShowRepository) All() []*models.Show {
	return r.db.AllShows()
}

// NewID produces a fresh show identifier.
func (r *ShowRepository) NewID() string {
	return r.db.GenID()
}
