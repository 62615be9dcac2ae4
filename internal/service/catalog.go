package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

var ErrInvalidCourseID = errors.New("course id is required")

// CatalogStore is implemented by both the REST gateway client and the direct
// Postgres repository.
type CatalogStore interface {
	ListCourses(ctx context.Context) ([]json.RawMessage, error)
	ListMaterials(ctx context.Context, courseID string) ([]json.RawMessage, error)
}

type CatalogService struct {
	store CatalogStore
}

func NewCatalogService(store CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) Courses(ctx context.Context) ([]json.RawMessage, error) {
	return s.store.ListCourses(ctx)
}

func (s *CatalogService) Materials(ctx context.Context, courseID string) ([]json.RawMessage, error) {
	courseID = strings.TrimSpace(courseID)
	if courseID == "" {
		return nil, ErrInvalidCourseID
	}
	return s.store.ListMaterials(ctx, courseID)
}
