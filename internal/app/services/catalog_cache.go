package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/advisory/internal/app/models"
	"github.com/yigit/advisory/internal/pkg/cache"
)

// Catalog cache keys
const (
	catalogKeyPattern   = "catalog:*"
	catalogCoursesKey   = "catalog:courses"
	catalogEdgesAllKey  = "catalog:prerequisites:all"
	catalogEdgesKeyTmpl = "catalog:prerequisites:%d"
)

// CatalogCache is the subset of cache.Cache the catalog decorator needs
type CatalogCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// CachedCatalog serves course and prerequisite lists from a cache and
// invalidates every catalog key on writes. Cache failures fall back to the store.
type CachedCatalog struct {
	courses CourseStore
	edges   PrerequisiteStore
	cache   CatalogCache
	ttl     time.Duration
	logger  zerolog.Logger
}

// NewCachedCatalog wraps the catalog stores with a read-through cache
func NewCachedCatalog(courses CourseStore, edges PrerequisiteStore, c CatalogCache, ttl time.Duration, logger zerolog.Logger) *CachedCatalog {
	return &CachedCatalog{
		courses: courses,
		edges:   edges,
		cache:   c,
		ttl:     ttl,
		logger:  logger.With().Str("component", "catalog_cache").Logger(),
	}
}

// Courses returns the catalog as a CourseStore
func (c *CachedCatalog) Courses() CourseStore { return cachedCourses{c} }

// Prerequisites returns the edges as a PrerequisiteStore
func (c *CachedCatalog) Prerequisites() PrerequisiteStore { return cachedEdges{c} }

// readThrough returns the cached value for key, calling load and filling the cache on a miss
func readThrough[T any](ctx context.Context, c *CachedCatalog, key string, load func() (T, error)) (T, error) {
	var cached T
	err := c.cache.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		c.logger.Warn().Err(err).Str("key", key).Msg("Catalog cache read failed, using store")
	}

	fresh, err := load()
	if err != nil {
		return fresh, err
	}

	if err := c.cache.Set(ctx, key, fresh, c.ttl); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("Catalog cache write failed")
	}
	return fresh, nil
}

func (c *CachedCatalog) invalidate(ctx context.Context) {
	if err := c.cache.DeleteByPattern(ctx, catalogKeyPattern); err != nil {
		c.logger.Warn().Err(err).Msg("Catalog cache invalidation failed")
	}
}

type cachedCourses struct{ c *CachedCatalog }

func (s cachedCourses) Create(ctx context.Context, course *models.Course) error {
	if err := s.c.courses.Create(ctx, course); err != nil {
		return err
	}
	s.c.invalidate(ctx)
	return nil
}

func (s cachedCourses) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.c.courses.GetByID(ctx, id)
}

func (s cachedCourses) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	return s.c.courses.GetByCode(ctx, code)
}

func (s cachedCourses) List(ctx context.Context) ([]models.Course, error) {
	return readThrough(ctx, s.c, catalogCoursesKey, func() ([]models.Course, error) {
		return s.c.courses.List(ctx)
	})
}

type cachedEdges struct{ c *CachedCatalog }

func (s cachedEdges) Create(ctx context.Context, edge *models.Prerequisite) error {
	if err := s.c.edges.Create(ctx, edge); err != nil {
		return err
	}
	s.c.invalidate(ctx)
	return nil
}

func (s cachedEdges) ListByCourse(ctx context.Context, courseID int64) ([]models.Prerequisite, error) {
	return readThrough(ctx, s.c, fmt.Sprintf(catalogEdgesKeyTmpl, courseID), func() ([]models.Prerequisite, error) {
		return s.c.edges.ListByCourse(ctx, courseID)
	})
}

func (s cachedEdges) ListAll(ctx context.Context) ([]models.Prerequisite, error) {
	return readThrough(ctx, s.c, catalogEdgesAllKey, func() ([]models.Prerequisite, error) {
		return s.c.edges.ListAll(ctx)
	})
}
