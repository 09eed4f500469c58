package fixture

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/user/moviecatalog/internal/model"
	"github.com/user/moviecatalog/internal/repository"
	"gopkg.in/yaml.v3"
)

// DateLayout world_premiere 的格式
const DateLayout = "2006-01-02"

// Document 一份 YAML 初始数据
type Document struct {
	Categories  []Category `yaml:"categories"`
	Genres      []Genre    `yaml:"genres"`
	Actors      []Actor    `yaml:"actors"`
	RatingStars []int      `yaml:"rating_stars"`
	Movies      []Movie    `yaml:"movies"`
}

type Category struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

type Genre struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

type Actor struct {
	Name        string `yaml:"name"`
	Age         int    `yaml:"age"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

// Movie 分类和类型按 url 引用，导演和演员按姓名引用
type Movie struct {
	Title         string   `yaml:"title"`
	Tagline       string   `yaml:"tagline"`
	Description   string   `yaml:"description"`
	Poster        string   `yaml:"poster"`
	Year          *int     `yaml:"year"`
	Country       string   `yaml:"country"`
	WorldPremiere string   `yaml:"world_premiere"`
	Budget        int64    `yaml:"budget"`
	FeesInUSA     int64    `yaml:"fees_in_usa"`
	FeesInWorld   int64    `yaml:"fees_in_world"`
	Category      string   `yaml:"category"`
	Genres        []string `yaml:"genres"`
	Directors     []string `yaml:"directors"`
	Actors        []string `yaml:"actors"`
	URL           string   `yaml:"url"`
	Draft         *bool    `yaml:"draft"`
	Stills        []Still  `yaml:"stills"`
}

type Still struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

// Result 本次新建的行数，已存在而被复用的不计入
type Result struct {
	Categories  int `json:"categories"`
	Genres      int `json:"genres"`
	Actors      int `json:"actors"`
	RatingStars int `json:"rating_stars"`
	Movies      int `json:"movies"`
	Stills      int `json:"stills"`
}

// Parse 解析 YAML，未知字段视为错误
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, errors.Wrap(err, "解析 fixture 失败")
	}
	return &doc, nil
}

// LoadFile 从文件加载
func LoadFile(ctx context.Context, repos *repository.Repositories, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "打开 fixture 文件 %s 失败", path)
	}
	defer f.Close()
	return Load(ctx, repos, f)
}

// Load 按顺序写入分类、类型、演员、星级和电影。
// 同 url（演员按姓名、星级按值）的记录已存在时直接复用，可以重复执行。
func Load(ctx context.Context, repos *repository.Repositories, r io.Reader) (*Result, error) {
	doc, err := Parse(r)
	if err != nil {
		return nil, err
	}

	l := &loader{
		repos:      repos,
		categories: make(map[string]uint),
		genres:     make(map[string]uint),
		actors:     make(map[string]uint),
	}
	steps := []func(context.Context, *Document) error{
		l.loadCategories,
		l.loadGenres,
		l.loadActors,
		l.loadStars,
		l.loadMovies,
	}
	for _, step := range steps {
		if err := step(ctx, doc); err != nil {
			return &l.result, err
		}
	}

	log.WithFields(log.Fields{
		"categories":   l.result.Categories,
		"genres":       l.result.Genres,
		"actors":       l.result.Actors,
		"rating_stars": l.result.RatingStars,
		"movies":       l.result.Movies,
		"stills":       l.result.Stills,
	}).Info("fixture loaded")
	return &l.result, nil
}

type loader struct {
	repos      *repository.Repositories
	result     Result
	categories map[string]uint
	genres     map[string]uint
	actors     map[string]uint
}

func (l *loader) loadCategories(ctx context.Context, doc *Document) error {
	for _, c := range doc.Categories {
		existing, err := l.repos.Category.FindByURL(ctx, c.URL)
		if err == nil {
			l.categories[c.URL] = existing.ID
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		m := &model.Category{Name: c.Name, Description: c.Description, URL: c.URL}
		if err := l.repos.Category.Create(ctx, m); err != nil {
			return errors.Wrapf(err, "category %s", c.URL)
		}
		l.categories[c.URL] = m.ID
		l.result.Categories++
	}
	return nil
}

func (l *loader) loadGenres(ctx context.Context, doc *Document) error {
	for _, g := range doc.Genres {
		existing, err := l.repos.Genre.FindByURL(ctx, g.URL)
		if err == nil {
			l.genres[g.URL] = existing.ID
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		m := &model.Genre{Name: g.Name, Description: g.Description, URL: g.URL}
		if err := l.repos.Genre.Create(ctx, m); err != nil {
			return errors.Wrapf(err, "genre %s", g.URL)
		}
		l.genres[g.URL] = m.ID
		l.result.Genres++
	}
	return nil
}

func (l *loader) loadActors(ctx context.Context, doc *Document) error {
	for _, a := range doc.Actors {
		existing, err := l.repos.Actor.FindByName(ctx, a.Name)
		if err == nil {
			l.actors[a.Name] = existing.ID
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		m := model.NewActor(a.Name)
		m.Age = a.Age
		m.Description = a.Description
		m.Image = a.Image
		if err := l.repos.Actor.Create(ctx, m); err != nil {
			return errors.Wrapf(err, "actor %s", a.Name)
		}
		l.actors[a.Name] = m.ID
		l.result.Actors++
	}
	return nil
}

func (l *loader) loadStars(ctx context.Context, doc *Document) error {
	for _, v := range doc.RatingStars {
		_, err := l.repos.RatingStar.FindByValue(ctx, v)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if err := l.repos.RatingStar.Create(ctx, model.NewRatingStar(v)); err != nil {
			return errors.Wrapf(err, "rating star %d", v)
		}
		l.result.RatingStars++
	}
	return nil
}

func (l *loader) loadMovies(ctx context.Context, doc *Document) error {
	for _, fm := range doc.Movies {
		_, err := l.repos.Movie.FindByURL(ctx, fm.URL)
		if err == nil {
			log.WithField("url", fm.URL).Debug("movie exists, skipping")
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		m, err := l.buildMovie(ctx, fm)
		if err != nil {
			return errors.Wrapf(err, "movie %s", fm.URL)
		}
		if err := l.repos.Movie.Create(ctx, m); err != nil {
			return errors.Wrapf(err, "movie %s", fm.URL)
		}
		l.result.Movies++

		for _, s := range fm.Stills {
			still := &model.MovieStill{Title: s.Title, Description: s.Description, Image: s.Image, MovieID: m.ID}
			if err := l.repos.Still.Create(ctx, still); err != nil {
				return errors.Wrapf(err, "still %s of movie %s", s.Title, fm.URL)
			}
			l.result.Stills++
		}
	}
	return nil
}

func (l *loader) buildMovie(ctx context.Context, fm Movie) (*model.Movie, error) {
	m := model.NewMovie(fm.Title, fm.URL)
	m.Tagline = fm.Tagline
	m.Description = fm.Description
	m.Poster = fm.Poster
	m.Country = fm.Country
	m.Budget = fm.Budget
	m.FeesInUSA = fm.FeesInUSA
	m.FeesInWorld = fm.FeesInWorld
	if fm.Year != nil {
		m.Year = fm.Year
	}
	if fm.Draft != nil {
		m.Draft = fm.Draft
	}
	if fm.WorldPremiere != "" {
		d, err := time.Parse(DateLayout, fm.WorldPremiere)
		if err != nil {
			return nil, errors.Wrap(err, "world_premiere")
		}
		m.WorldPremiere = d
	}

	if fm.Category != "" {
		id, err := l.categoryID(ctx, fm.Category)
		if err != nil {
			return nil, err
		}
		m.CategoryID = &id
	}
	for _, url := range fm.Genres {
		id, err := l.genreID(ctx, url)
		if err != nil {
			return nil, err
		}
		m.Genres = append(m.Genres, model.Genre{ID: id})
	}
	for _, name := range fm.Directors {
		id, err := l.actorID(ctx, name)
		if err != nil {
			return nil, err
		}
		m.Directors = append(m.Directors, model.Actor{ID: id})
	}
	for _, name := range fm.Actors {
		id, err := l.actorID(ctx, name)
		if err != nil {
			return nil, err
		}
		m.Actors = append(m.Actors, model.Actor{ID: id})
	}
	return m, nil
}

// 引用可以指向数据库里已有、但本文件没有声明的记录

func (l *loader) categoryID(ctx context.Context, url string) (uint, error) {
	if id, ok := l.categories[url]; ok {
		return id, nil
	}
	c, err := l.repos.Category.FindByURL(ctx, url)
	if err != nil {
		return 0, errors.Wrapf(err, "category %s", url)
	}
	l.categories[url] = c.ID
	return c.ID, nil
}

func (l *loader) genreID(ctx context.Context, url string) (uint, error) {
	if id, ok := l.genres[url]; ok {
		return id, nil
	}
	g, err := l.repos.Genre.FindByURL(ctx, url)
	if err != nil {
		return 0, errors.Wrapf(err, "genre %s", url)
	}
	l.genres[url] = g.ID
	return g.ID, nil
}

func (l *loader) actorID(ctx context.Context, name string) (uint, error) {
	if id, ok := l.actors[name]; ok {
		return id, nil
	}
	a, err := l.repos.Actor.FindByName(ctx, name)
	if err != nil {
		return 0, errors.Wrapf(err, "actor %s", name)
	}
	l.actors[name] = a.ID
	return a.ID, nil
}
