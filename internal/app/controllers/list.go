package controllers

import (
	"sort"
	"strconv"
	"strings"

	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/app/resources"
	"github.com/yigit/schooldash/internal/app/views"
	"github.com/yigit/schooldash/internal/pkg/helpers"
)

// filterRows keeps the items whose search text contains q.
func filterRows[T any](items []T, search func(T) string, q string) []T {
	out := make([]T, 0, len(items))
	needle := strings.ToLower(q)
	for _, item := range items {
		if needle == "" || search == nil || strings.Contains(search(item), needle) {
			out = append(out, item)
		}
	}
	return out
}

// sortRows orders items by the displayed column value. Numbers compare numerically,
// everything else case-insensitively; blanks sort last.
func sortRows[T any](items []T, value func(T) string, dir string) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := value(items[i]), value(items[j])
		aBlank, bBlank := isBlank(a), isBlank(b)
		if aBlank || bBlank {
			return !aBlank && bBlank
		}
		if dir == "desc" {
			a, b = b, a
		}
		return lessValue(a, b)
	})
}

func isBlank(v string) bool {
	return v == "" || v == resources.Blank
}

func lessValue(a, b string) bool {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return fa < fb
	}
	return strings.ToLower(a) < strings.ToLower(b)
}

// groupRows splits items into runs by key, in order of first appearance. A nil key
// yields one untitled group.
func groupRows[T any](items []T, key func(T) string, row func(T) views.Row) []views.RowGroup {
	if key == nil {
		g := views.RowGroup{}
		for _, item := range items {
			g.Rows = append(g.Rows, row(item))
		}
		return []views.RowGroup{g}
	}

	var groups []views.RowGroup
	index := map[string]int{}
	for _, item := range items {
		k := key(item)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, views.RowGroup{Title: k})
		}
		groups[i].Rows = append(groups[i].Rows, row(item))
	}
	return groups
}

func badgeCell(value string) views.Cell {
	if value == "" || value == resources.Blank {
		return views.Cell{Value: resources.Blank}
	}
	return views.Cell{Value: models.Humanize(value), Badge: value}
}

// paginate returns the visible slice of total rows and the pager links.
func (s listState) paginate(path string, total int) (pageIndex, views.Pagination) {
	pages := (total + s.limit - 1) / s.limit
	if pages < 1 {
		pages = 1
	}
	current := s.page
	if current > pages {
		current = pages
	}
	start, end := helpers.CalculateSliceIndices(current, s.limit, total)

	p := views.Pagination{Page: current, Pages: pages, Total: total}
	if current > 1 {
		p.PrevPath = s.link(path, map[string]string{"page": strconv.Itoa(current - 1)})
	}
	if current < pages {
		p.NextPath = s.link(path, map[string]string{"page": strconv.Itoa(current + 1)})
	}
	return pageIndex{start: start, end: end}, p
}
