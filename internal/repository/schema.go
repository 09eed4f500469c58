package repository

// OnDelete 被引用行删除时对引用方的处理方式
type OnDelete int

const (
	// Cascade 连同引用方一起删除
	Cascade OnDelete = iota
	// SetNull 把引用方的外键置空
	SetNull
)

func (o OnDelete) String() string {
	switch o {
	case Cascade:
		return "CASCADE"
	case SetNull:
		return "SET NULL"
	default:
		return "UNKNOWN"
	}
}

// Relationship 一条外键引用关系
type Relationship struct {
	// ParentTable 被引用的表，如 "movies"
	ParentTable string

	// ChildTable 持有外键的表，如 "movie_stills"
	ChildTable string

	// ForeignKey ChildTable 中指向 ParentTable.id 的列
	ForeignKey string

	OnDelete OnDelete

	// Junction 多对多关联表，行没有自己的 id，删除时直接按外键删
	Junction bool
}

// Registry 保存所有引用关系，删除时据此级联或置空
type Registry struct {
	relationships []Relationship
	byParent      map[string][]Relationship
	tables        []string
}

// NewRegistry 创建空的 Registry
func NewRegistry() *Registry {
	return &Registry{
		relationships: []Relationship{},
		byParent:      make(map[string][]Relationship),
	}
}

// Register 登记一条引用关系
func (r *Registry) Register(rel Relationship) {
	r.relationships = append(r.relationships, rel)
	r.byParent[rel.ParentTable] = append(r.byParent[rel.ParentTable], rel)
	r.addTable(rel.ParentTable)
	r.addTable(rel.ChildTable)
}

func (r *Registry) addTable(table string) {
	for _, t := range r.tables {
		if t == table {
			return
		}
	}
	r.tables = append(r.tables, table)
}

// ChildrenOf 返回引用了 parentTable 的全部关系
func (r *Registry) ChildrenOf(parentTable string) []Relationship {
	return r.byParent[parentTable]
}

// AllRelationships 返回全部关系，按登记顺序
func (r *Registry) AllRelationships() []Relationship {
	return r.relationships
}

// Tables 返回出现过的全部表，按首次登记顺序
func (r *Registry) Tables() []string {
	return r.tables
}

var catalog = newCatalogRegistry()

// Catalog 电影目录的引用关系
func Catalog() *Registry {
	return catalog
}

func newCatalogRegistry() *Registry {
	r := NewRegistry()

	r.Register(Relationship{ParentTable: "categories", ChildTable: "movies", ForeignKey: "category_id", OnDelete: SetNull})

	r.Register(Relationship{ParentTable: "genres", ChildTable: "movie_genres", ForeignKey: "genre_id", OnDelete: Cascade, Junction: true})
	r.Register(Relationship{ParentTable: "actors", ChildTable: "movie_directors", ForeignKey: "actor_id", OnDelete: Cascade, Junction: true})
	r.Register(Relationship{ParentTable: "actors", ChildTable: "movie_actors", ForeignKey: "actor_id", OnDelete: Cascade, Junction: true})

	r.Register(Relationship{ParentTable: "movies", ChildTable: "movie_directors", ForeignKey: "movie_id", OnDelete: Cascade, Junction: true})
	r.Register(Relationship{ParentTable: "movies", ChildTable: "movie_actors", ForeignKey: "movie_id", OnDelete: Cascade, Junction: true})
	r.Register(Relationship{ParentTable: "movies", ChildTable: "movie_genres", ForeignKey: "movie_id", OnDelete: Cascade, Junction: true})
	r.Register(Relationship{ParentTable: "movies", ChildTable: "movie_stills", ForeignKey: "movie_id", OnDelete: Cascade})
	r.Register(Relationship{ParentTable: "movies", ChildTable: "ratings", ForeignKey: "movie_id", OnDelete: Cascade})
	r.Register(Relationship{ParentTable: "movies", ChildTable: "reviews", ForeignKey: "movie_id", OnDelete: Cascade})

	r.Register(Relationship{ParentTable: "rating_stars", ChildTable: "ratings", ForeignKey: "star_id", OnDelete: Cascade})

	r.Register(Relationship{ParentTable: "reviews", ChildTable: "reviews", ForeignKey: "parent_id", OnDelete: SetNull})

	return r
}
