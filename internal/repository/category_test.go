package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/moviecatalog/internal/model"
)

func TestCategoryCRUD(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	c := newCategory("films")
	require.NoError(t, repos.Category.Create(ctx, c))
	require.NotZero(t, c.ID)

	got, err := repos.Category.FindByURL(ctx, "films")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, "Category films", got.String())

	got.Name = "Feature films"
	require.NoError(t, repos.Category.Update(ctx, got))

	got, err = repos.Category.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Feature films", got.Name)

	all, err := repos.Category.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repos.Category.Delete(ctx, c.ID))
	_, err = repos.Category.FindByID(ctx, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryDuplicateURL(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	require.NoError(t, repos.Category.Create(ctx, newCategory("series")))
	err := repos.Category.Create(ctx, newCategory("series"))
	assert.ErrorIs(t, err, ErrDuplicateValue)

	// 更新成已存在的 url 同样被拒绝
	other := newCategory("cartoons")
	require.NoError(t, repos.Category.Create(ctx, other))
	other.URL = "series"
	assert.ErrorIs(t, repos.Category.Update(ctx, other), ErrDuplicateValue)
}

func TestGenreDuplicateURL(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	require.NoError(t, repos.Genre.Create(ctx, newGenre("drama")))
	assert.ErrorIs(t, repos.Genre.Create(ctx, newGenre("drama")), ErrDuplicateValue)

	g, err := repos.Genre.FindByURL(ctx, "drama")
	require.NoError(t, err)
	assert.Equal(t, "Genre drama", g.String())
}

func TestCategoryValidation(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	c := newCategory("not a slug")
	err := repos.Category.Create(ctx, c)

	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.True(t, ve.Has("url"))

	all, err := repos.Category.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDeleteCategoryNullifiesMovies(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	c := newCategory("films")
	require.NoError(t, repos.Category.Create(ctx, c))

	m := newMovie("Inception", "inception")
	m.CategoryID = &c.ID
	require.NoError(t, repos.Movie.Create(ctx, m))

	byCategory, err := repos.Movie.ListByCategory(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	require.NoError(t, repos.Category.Delete(ctx, c.ID))

	got, err := repos.Movie.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)
	assert.Nil(t, got.Category)
}

func TestUpdateAndDeleteMissing(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	c := newCategory("ghost")
	c.ID = 42
	assert.ErrorIs(t, repos.Category.Update(ctx, c), ErrNotFound)
	assert.ErrorIs(t, repos.Category.Delete(ctx, 42), ErrNotFound)
	assert.ErrorIs(t, repos.Genre.Delete(ctx, 42), ErrNotFound)
	assert.ErrorIs(t, repos.Movie.Delete(ctx, 42), ErrNotFound)
	assert.ErrorIs(t, repos.Review.Delete(ctx, 42), ErrNotFound)

	_, err := repos.Movie.FindByURL(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
