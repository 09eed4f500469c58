package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentCreateSameURL(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	const workers = 4
	errs := make([]error, workers)
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			errs[i] = repos.Movie.Create(ctx, newMovie(fmt.Sprintf("Heat %d", i), "heat"))
			return nil
		})
	}
	require.NoError(t, g.Wait())

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
			continue
		}
		assert.ErrorIs(t, err, ErrDuplicateValue)
	}
	assert.Equal(t, 1, created)

	n, err := repos.Movie.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestConcurrentCreateSameCategoryURL(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	var g errgroup.Group
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		g.Go(func() error {
			results <- repos.Category.Create(ctx, newCategory("films"))
			return nil
		})
	}
	require.NoError(t, g.Wait())
	close(results)

	var ok, dup int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, ErrDuplicateValue):
			dup++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, dup)
}
