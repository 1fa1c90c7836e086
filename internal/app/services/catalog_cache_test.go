package services

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/advisory/internal/app/models"
	"github.com/yigit/advisory/internal/pkg/cache"
)

// mapCache is a CatalogCache over a map; failing makes every call return a connection error
type mapCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	failing bool
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]byte)}
}

func (c *mapCache) Get(_ context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return cache.ErrCacheConnection
	}
	raw, ok := c.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *mapCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return cache.ErrCacheConnection
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *mapCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return cache.ErrCacheConnection
	}
	for key := range c.entries {
		if ok, _ := path.Match(pattern, key); ok {
			delete(c.entries, key)
		}
	}
	return nil
}

func newCachedDemo() (*memoryStore, *mapCache, *CachedCatalog) {
	m := newDemoStore()
	c := newMapCache()
	return m, c, NewCachedCatalog(memCourses{m}, memEdges{m}, c, time.Minute, zerolog.Nop())
}

func TestCachedCatalog_ReadThrough(t *testing.T) {
	ctx := context.Background()
	m, c, catalog := newCachedDemo()

	first, err := catalog.Courses().List(ctx)
	require.NoError(t, err)
	second, err := catalog.Courses().List(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, m.courseListCalls)
	assert.Contains(t, c.entries, catalogCoursesKey)

	_, err = catalog.Prerequisites().ListAll(ctx)
	require.NoError(t, err)
	_, err = catalog.Prerequisites().ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, m.edgeListCalls)

	edges, err := catalog.Prerequisites().ListByCourse(ctx, 6)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, "CSC301", edges[0].RequiredCourseCode)
	assert.Contains(t, c.entries, "catalog:prerequisites:6")
}

func TestCachedCatalog_WritesInvalidate(t *testing.T) {
	ctx := context.Background()
	m, c, catalog := newCachedDemo()

	_, err := catalog.Courses().List(ctx)
	require.NoError(t, err)
	_, err = catalog.Prerequisites().ListAll(ctx)
	require.NoError(t, err)

	require.NoError(t, catalog.Courses().Create(ctx, &models.Course{Code: "CSC302", Name: "Compilers", Credits: 3, SemesterOffered: models.TermSecond}))
	assert.Empty(t, c.entries)

	courses, err := catalog.Courses().List(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 7)
	assert.Equal(t, 2, m.courseListCalls)

	_, err = catalog.Prerequisites().ListAll(ctx)
	require.NoError(t, err)
	require.NoError(t, catalog.Prerequisites().Create(ctx, &models.Prerequisite{CourseID: 6, RequiredCourseID: 1}))
	assert.Empty(t, c.entries)
}

func TestCachedCatalog_FallsBackWhenCacheFails(t *testing.T) {
	ctx := context.Background()
	m, c, catalog := newCachedDemo()
	c.failing = true

	courses, err := catalog.Courses().List(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 6)

	_, err = catalog.Courses().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, m.courseListCalls)

	require.NoError(t, catalog.Courses().Create(ctx, &models.Course{Code: "CSC302", Name: "Compilers", Credits: 3, SemesterOffered: models.TermFirst}))
}

func TestCachedCatalog_StoreErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	c := newMapCache()
	catalog := NewCachedCatalog(failingCourses{}, memEdges{newDemoStore()}, c, time.Minute, zerolog.Nop())

	_, err := catalog.Courses().List(ctx)
	assert.Error(t, err)
	assert.Empty(t, c.entries)
}

func TestCachedCatalog_StandingUsesCachedCatalog(t *testing.T) {
	ctx := context.Background()
	m, _, catalog := newCachedDemo()
	svc := NewStandingService(memStudents{m}, catalog.Courses(), memResults{m}, catalog.Prerequisites(), zerolog.Nop())

	for i := 0; i < 3; i++ {
		_, err := svc.Dashboard(ctx, 1)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, m.courseListCalls)
	assert.Equal(t, 1, m.edgeListCalls)
}

type failingCourses struct{ CourseStore }

func (failingCourses) List(context.Context) ([]models.Course, error) {
	return nil, errors.New("connection reset")
}
