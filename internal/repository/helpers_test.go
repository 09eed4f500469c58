package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/user/moviecatalog/internal/config"
	"github.com/user/moviecatalog/internal/model"
)

func newTestRepos(t *testing.T) *Repositories {
	t.Helper()

	db, err := InitDB(&config.Config{
		DBDriver:     "sqlite",
		SQLitePath:   ":memory:",
		MaxOpenConns: 1, // 内存库每个连接都是独立的库
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return NewRepositories(db)
}

func newCategory(url string) *model.Category {
	return &model.Category{Name: "Category " + url, Description: "Films of the " + url + " kind", URL: url}
}

func newGenre(url string) *model.Genre {
	return &model.Genre{Name: "Genre " + url, Description: "About " + url, URL: url}
}

func newActor(name string) *model.Actor {
	a := model.NewActor(name)
	a.Description = name + " biography"
	a.Image = "actors/" + name + ".jpg"
	return a
}

func newMovie(title, url string) *model.Movie {
	m := model.NewMovie(title, url)
	m.Description = title + " plot"
	m.Poster = "movies/" + url + ".jpg"
	m.Country = "USA"
	return m
}

func mustCreateMovie(t *testing.T, repos *Repositories, title, url string) *model.Movie {
	t.Helper()
	m := newMovie(title, url)
	require.NoError(t, repos.Movie.Create(context.Background(), m))
	return m
}

func mustCreateStar(t *testing.T, repos *Repositories, value int) *model.RatingStar {
	t.Helper()
	s := model.NewRatingStar(value)
	require.NoError(t, repos.RatingStar.Create(context.Background(), s))
	return s
}

func mustCreateReview(t *testing.T, repos *Repositories, movieID uint, parentID *uint, name string) *model.Review {
	t.Helper()
	rv := &model.Review{
		Email:    name + "@example.com",
		Name:     name,
		Text:     "Review by " + name,
		MovieID:  movieID,
		ParentID: parentID,
	}
	require.NoError(t, repos.Review.Create(context.Background(), rv))
	return rv
}
