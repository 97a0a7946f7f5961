package stubapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schooldash/internal/middleware"
)

// collection serves the CRUD routes of one tenant-scoped entity. C and U are the
// create and sparse update request bodies.
type collection[T any, C any, U any] struct {
	repo *Repository[T]

	build func(c *gin.Context, schoolID string, req C) (T, error)
	apply func(c *gin.Context, row *T, req U) error

	// Optional hooks.
	filter func(c *gin.Context, row T) bool
	view   func(row T) T
	remove func(c *gin.Context, schoolID, id string) error
	// after runs once a created or updated row is stored.
	after func(row T)

	created string
	updated string
	deleted string
}

func (col *collection[T, C, U]) present(row T) T {
	if col.view == nil {
		return row
	}
	return col.view(row)
}

func (col *collection[T, C, U]) List(c *gin.Context) {
	var keep func(T) bool
	if col.filter != nil {
		keep = func(row T) bool { return col.filter(c, row) }
	}
	rows := col.repo.List(schoolOf(c), keep)
	for i := range rows {
		rows[i] = col.present(rows[i])
	}
	list(c, rows)
}

func (col *collection[T, C, U]) Get(c *gin.Context) {
	row, err := col.repo.Get(schoolOf(c), c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	ok(c, http.StatusOK, col.present(row), "")
}

func (col *collection[T, C, U]) Create(c *gin.Context) {
	var req C
	if !middleware.BindJSON(c, &req) {
		return
	}
	row, err := col.build(c, schoolOf(c), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	if err := col.repo.Insert(row); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	if col.after != nil {
		col.after(row)
	}
	ok(c, http.StatusCreated, col.present(row), col.created)
}

func (col *collection[T, C, U]) Update(c *gin.Context) {
	var req U
	if !middleware.BindJSON(c, &req) {
		return
	}
	row, err := col.repo.Update(schoolOf(c), c.Param("id"), func(row *T) error {
		return col.apply(c, row, req)
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	if col.after != nil {
		col.after(row)
	}
	ok(c, http.StatusOK, col.present(row), col.updated)
}

func (col *collection[T, C, U]) Delete(c *gin.Context) {
	remove := col.remove
	if remove == nil {
		remove = func(_ *gin.Context, schoolID, id string) error { return col.repo.Delete(schoolID, id) }
	}
	if err := remove(c, schoolOf(c), c.Param("id")); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	ok(c, http.StatusOK, nil, col.deleted)
}

// mount registers the collection under path.
func (col *collection[T, C, U]) mount(rg *gin.RouterGroup, path string, writers ...gin.HandlerFunc) {
	g := rg.Group(path)
	g.GET("", col.List)
	g.GET("/:id", col.Get)

	w := g.Group("", writers...)
	w.POST("", col.Create)
	w.PUT("/:id", col.Update)
	w.DELETE("/:id", col.Delete)
}
