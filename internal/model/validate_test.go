package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugRule(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"inception", true},
		{"inception-2", true},
		{"Sci_Fi-2010", true},
		{"", false},
		{"with space", false},
		{"a/b", false},
		{"кино", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			c := &Category{Name: "Films", Description: "Feature films", URL: tt.url}
			err := Validate(c)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.True(t, ve.Has("url"))
		})
	}
}

func TestValidationError(t *testing.T) {
	g := &Genre{Name: strings.Repeat("x", 101), URL: "drama"}
	err := Validate(g)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Genre", ve.Entity)
	assert.True(t, ve.Has("name"))
	assert.True(t, ve.Has("description"))
	assert.False(t, ve.Has("url"))
	assert.Contains(t, err.Error(), "name(max=100)")
	assert.Contains(t, err.Error(), "description(required)")
}

func TestBoundaries(t *testing.T) {
	s := NewRatingStar(32767)
	assert.NoError(t, Validate(s))
	s.Value = 32768
	assert.Error(t, Validate(s))
	s.Value = -32768
	assert.NoError(t, Validate(s))

	a := NewActor("Ellen Ripley")
	a.Description = "Warrant officer"
	a.Image = "actors/ripley.jpg"
	a.Age = 32767
	assert.NoError(t, Validate(a))
	a.Age = -1
	assert.Error(t, Validate(a))

	m := NewMovie("Alien", "alien")
	m.Description = "In space no one can hear you scream"
	m.Poster = "movies/alien.jpg"
	m.Country = "UK"
	m.Budget = 2147483647
	assert.NoError(t, Validate(m))
	m.Budget = 2147483648
	assert.Error(t, Validate(m))
}

func TestNewMovieDefaults(t *testing.T) {
	m := NewMovie("Alien", "alien")
	assert.Equal(t, DefaultYear, m.ReleaseYear())
	assert.True(t, m.IsDraft())
	assert.Empty(t, m.Tagline)
	assert.Zero(t, m.Budget)
	assert.Zero(t, m.FeesInUSA)
	assert.Zero(t, m.FeesInWorld)
	assert.Nil(t, m.CategoryID)
	assert.Equal(t, Today(), m.WorldPremiere)
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2010, 7, 8, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2010, 7, 8, 0, 0, 0, 0, time.UTC), DateOf(ts))
}

func TestLabels(t *testing.T) {
	movie := &Movie{ID: 7, Title: "Alien"}
	star := &RatingStar{Value: 5}

	assert.Equal(t, "Films", (&Category{Name: "Films"}).String())
	assert.Equal(t, "Horror", (&Genre{Name: "Horror"}).String())
	assert.Equal(t, "Alien", movie.String())
	assert.Equal(t, "Chestburster", (&MovieStill{Title: "Chestburster"}).String())
	assert.Equal(t, "5", star.String())
	assert.Equal(t, "-3", NewRatingStar(-3).String())

	assert.Equal(t, "5 - Alien", (&Rating{Star: star, Movie: movie}).String())
	assert.Equal(t, "2 - movie#7", (&Rating{StarID: 2, MovieID: 7}).String())
	assert.Equal(t, "ann - Alien", (&Review{Name: "ann", Movie: movie}).String())
}

func TestReviewParentRule(t *testing.T) {
	rv := &Review{ID: 3, Email: "ann@example.com", Name: "ann", Text: "Great", MovieID: 1}
	assert.NoError(t, Validate(rv))

	rv.ParentID = Ptr(uint(2))
	assert.NoError(t, Validate(rv))

	rv.ParentID = Ptr(uint(3))
	var ve *ValidationError
	require.ErrorAs(t, Validate(rv), &ve)
	assert.True(t, ve.Has("parent_id"))

	// 新建时还没有 ID
	reply := &Review{Email: "bob@example.com", Name: "bob", Text: "Agreed", MovieID: 1, ParentID: Ptr(uint(3))}
	assert.NoError(t, Validate(reply))
}

func TestMovieNilDefaults(t *testing.T) {
	m := &Movie{Title: "Bare", URL: "bare"}
	assert.True(t, m.IsDraft())
	assert.Equal(t, DefaultYear, m.ReleaseYear())

	m.applyDefaults()
	assert.Equal(t, DefaultYear, *m.Year)
	assert.True(t, *m.Draft)
	assert.Equal(t, Today(), m.WorldPremiere)

	m.Year = Ptr(-1)
	var ve *ValidationError
	require.ErrorAs(t, Validate(m), &ve)
	assert.True(t, ve.Has("year"))
}
