package controllers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/yigit/schooldash/internal/apiclient"
	"github.com/yigit/schooldash/internal/app/forms"
	"github.com/yigit/schooldash/internal/app/resources"
	"github.com/yigit/schooldash/internal/app/views"
	"github.com/yigit/schooldash/internal/pkg/apperrors"
	"github.com/yigit/schooldash/internal/session"
)

// NoChangesMessage is flashed when an edit is submitted without changes.
const NoChangesMessage = "No changes to save."

// ResourceController serves the list, form, detail and delete pages of one entity.
// Every mutation redirects back to the list, which re-fetches from the API.
type ResourceController[T any] struct {
	base
	desc *resources.Descriptor[T]
	tabs []resources.MasterDataTab
}

// NewResourceController creates a controller for desc.
func NewResourceController[T any](d Deps, desc *resources.Descriptor[T]) *ResourceController[T] {
	return &ResourceController[T]{base: newBase(d), desc: desc}
}

// WithTabs shows a tab strip above the list.
func (rc *ResourceController[T]) WithTabs(tabs []resources.MasterDataTab) *ResourceController[T] {
	rc.tabs = tabs
	return rc
}

// Register mounts the routes the descriptor allows. Browsers only submit GET and
// POST, so updates and deletes are POSTs to the item.
func (rc *ResourceController[T]) Register(r gin.IRouter) {
	d := rc.desc
	r.GET(d.Path, rc.List)
	if d.CanCreate {
		r.GET(d.Path+"/new", rc.New)
		r.POST(d.Path, rc.Create)
	}
	if d.HasDetail() {
		r.GET(d.Path+"/:id", rc.Show)
	}
	if d.CanEdit {
		r.GET(d.Path+"/:id/edit", rc.Edit)
		r.POST(d.Path+"/:id", rc.Update)
	}
	if d.CanDelete {
		r.GET(d.Path+"/:id/delete", rc.ConfirmDelete)
		r.POST(d.Path+"/:id/delete", rc.Delete)
	}
}

func (rc *ResourceController[T]) api(c *gin.Context) *apiclient.Resource[T] {
	return apiclient.For[T](rc.Sessions.Client(c), rc.desc.APIPath)
}

func (rc *ResourceController[T]) itemPath(id, suffix string) string {
	return rc.desc.Path + "/" + url.PathEscape(id) + suffix
}

// List handles GET <path>. The collection and the option sources the page needs are
// fetched concurrently; a failed fetch is logged and leaves the list empty.
func (rc *ResourceController[T]) List(c *gin.Context) {
	d := rc.desc
	api := rc.Sessions.Client(c)

	query := url.Values{}
	selected := ""
	if d.Filter != nil {
		if selected = c.Query(d.Filter.Param); selected != "" {
			query.Set(d.Filter.Param, selected)
		}
	}

	var (
		page apiclient.Page[T]
		src  forms.Sources
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		page, err = apiclient.For[T](api, d.APIPath).List(ctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		src, err = loadSources(ctx, api, rc.listSources())
		return err
	})
	if err := g.Wait(); err != nil {
		if rc.sessionExpired(c, err) {
			return
		}
		rc.Log.Error().Err(err).Str("resource", d.Key).Msg("Failed to load list")
		if apperrors.Classify(err) == apperrors.KindForbidden {
			rc.Sessions.SetFlash(c, session.FlashError, apperrors.UserMessage(err, ""))
		}
		page, src = apiclient.Page[T]{}, forms.Sources{}
	}

	rc.render(c, http.StatusOK, views.PageList, rc.listPage(c, page, src, selected))
}

func (rc *ResourceController[T]) listSources() []string {
	var names []string
	if rc.desc.Filter != nil {
		names = append(names, rc.desc.Filter.Source)
	}
	if p := rc.desc.Prerequisite; p != "" && (len(names) == 0 || names[0] != p) {
		names = append(names, p)
	}
	return names
}

func (rc *ResourceController[T]) listPage(c *gin.Context, page apiclient.Page[T], src forms.Sources, selected string) views.ListPage {
	d := rc.desc
	state := newListState(c, rc.PageSize)

	p := views.ListPage{
		Layout:     rc.layout(c, d.Plural),
		Heading:    d.Plural,
		Singular:   d.Singular,
		Query:      state.q,
		SearchPath: d.Path,
		EmptyTitle: d.EmptyTitle,
		EmptyText:  d.EmptyText,
	}
	for _, t := range rc.tabs {
		p.Tabs = append(p.Tabs, views.Tab{Label: t.Label, Path: t.Path, Active: t.Path == d.Path})
	}
	if page.Meta != nil {
		total := page.Meta.Total
		p.APITotal = &total
	}

	createPath := d.Path + "/new"
	if d.Filter != nil {
		p.Filter = rc.filterView(src, selected)
		if selected != "" {
			p.SearchPath = d.Path + "?" + url.Values{d.Filter.Param: {selected}}.Encode()
			createPath += "?" + url.Values{d.Filter.Param: {selected}}.Encode()
		}
	}
	if d.CanCreate {
		p.CreatePath = createPath
		p.EmptyLink = &views.Link{Label: "Add " + d.Singular, Path: createPath}
	}
	if len(page.Items) == 0 && d.Prerequisite != "" && len(src[d.Prerequisite]) == 0 {
		p.EmptyText = d.PrerequisiteText
		p.EmptyLink = &views.Link{Label: "Set up " + d.Prerequisite, Path: d.PrerequisiteLink}
	}

	rows := filterRows(page.Items, d.Search, state.q)
	p.NoMatches = len(page.Items) > 0 && len(rows) == 0

	sortKey, dir := state.sortKey, state.dir
	if col, ok := rc.sortColumn(sortKey); ok {
		sortRows(rows, col.Value, dir)
	} else {
		sortKey = ""
	}
	for _, col := range d.Columns {
		head := views.Column{Label: col.Label}
		if col.Sortable {
			next := "asc"
			if col.Key == sortKey && dir == "asc" {
				next = "desc"
			}
			head.SortPath = state.link(d.Path, map[string]string{"sort": col.Key, "dir": next, "page": ""})
			if col.Key == sortKey {
				head.Sorted = dir
			}
		}
		p.Columns = append(p.Columns, head)
	}

	visible, pagination := state.paginate(d.Path, len(rows))
	p.Pagination = pagination
	p.Groups = groupRows(rows[visible.start:visible.end], d.GroupBy, rc.row)
	return p
}

func (rc *ResourceController[T]) filterView(src forms.Sources, selected string) *views.FilterView {
	f := rc.desc.Filter
	fv := &views.FilterView{
		Label:    f.Label,
		Param:    f.Param,
		AllLabel: f.AllLabel,
		AllPath:  rc.desc.Path,
		Selected: selected,
	}
	for _, o := range src[f.Source] {
		fv.Options = append(fv.Options, views.Tab{
			Label:  o.Label,
			Path:   rc.desc.Path + "?" + url.Values{f.Param: {o.Value}}.Encode(),
			Active: o.Value == selected,
		})
	}
	return fv
}

func (rc *ResourceController[T]) sortColumn(key string) (resources.Column[T], bool) {
	for _, col := range rc.desc.Columns {
		if col.Key == key && col.Sortable {
			return col, true
		}
	}
	return resources.Column[T]{}, false
}

func (rc *ResourceController[T]) row(item T) views.Row {
	d := rc.desc
	id := d.ID(item)
	r := views.Row{ID: id}
	for _, col := range d.Columns {
		value := col.Value(item)
		if col.Badge {
			r.Cells = append(r.Cells, badgeCell(value))
			continue
		}
		r.Cells = append(r.Cells, views.Cell{Value: value})
	}
	if d.HasDetail() {
		r.ShowPath = rc.itemPath(id, "")
	}
	if d.CanEdit {
		r.EditPath = rc.itemPath(id, "/edit")
	}
	if d.CanDelete {
		r.DeletePath = rc.itemPath(id, "/delete")
	}
	return r
}

// New handles GET <path>/new. Query parameters naming a field preselect it, e.g.
// ?classId= from a filtered section list.
func (rc *ResourceController[T]) New(c *gin.Context) {
	schema := rc.desc.Schema
	values := schema.Blank()
	for _, f := range schema.Fields {
		if q := c.Query(f.Name); q != "" {
			values = schema.ChangeParent(values, f.Name, q)
		}
	}

	src, err := loadSources(c.Request.Context(), rc.Sessions.Client(c), rc.desc.Sources())
	if err != nil {
		if rc.sessionExpired(c, err) {
			return
		}
		rc.Log.Error().Err(err).Str("resource", rc.desc.Key).Msg("Failed to load form options")
		rc.renderForm(c, http.StatusOK, forms.Create, "", values, nil, forms.Sources{}, apperrors.GenericMessage)
		return
	}
	rc.renderForm(c, http.StatusOK, forms.Create, "", values, nil, src, "")
}

// Create handles POST <path>.
func (rc *ResourceController[T]) Create(c *gin.Context) {
	d := rc.desc
	ctx := c.Request.Context()
	values, refresh, bindErr := bindForm(c, d.Schema)

	src, err := loadSources(ctx, rc.Sessions.Client(c), d.Sources())
	if err != nil {
		if rc.sessionExpired(c, err) {
			return
		}
		rc.Log.Error().Err(err).Str("resource", d.Key).Msg("Failed to load form options")
		rc.renderForm(c, failureStatus(err), forms.Create, "", values, nil, forms.Sources{}, apperrors.GenericMessage)
		return
	}
	if bindErr != nil {
		rc.Log.Warn().Err(bindErr).Str("resource", d.Key).Msg("Malformed form body")
		rc.renderForm(c, http.StatusBadRequest, forms.Create, "", values, nil, src, apperrors.GenericMessage)
		return
	}
	if refresh {
		rc.renderForm(c, http.StatusOK, forms.Create, "", values, nil, src, "")
		return
	}
	if errs := d.Schema.Validate(values, src, forms.Create); errs.Any() {
		rc.renderForm(c, http.StatusUnprocessableEntity, forms.Create, "", values, errs, src, d.Schema.Summary(errs))
		return
	}

	release, err := rc.acquire(c, d.Key+":create")
	if err != nil {
		rc.renderForm(c, http.StatusConflict, forms.Create, "", values, nil, src, mutationMessage(err))
		return
	}
	defer release()

	if _, err := rc.api(c).Create(ctx, d.Schema.Payload(values, nil, forms.Create)); err != nil {
		if rc.sessionExpired(c, err) {
			return
		}
		rc.Log.Warn().Err(err).Str("resource", d.Key).Msg("Create rejected")
		rc.renderForm(c, failureStatus(err), forms.Create, "", values, nil, src, mutationMessage(err))
		return
	}
	rc.flashRedirect(c, session.FlashSuccess, d.CreatedFlash, d.Path)
}

// load fetches one entity together with the form's option sources.
func (rc *ResourceController[T]) load(c *gin.Context, id string) (T, forms.Sources, error) {
	var (
		item T
		src  forms.Sources
	)
	api := rc.Sessions.Client(c)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		item, err = apiclient.For[T](api, rc.desc.APIPath).Get(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		src, err = loadSources(ctx, api, rc.desc.Sources())
		return err
	})
	err := g.Wait()
	return item, src, err
}

// Edit handles GET <path>/:id/edit.
func (rc *ResourceController[T]) Edit(c *gin.Context) {
	d := rc.desc
	id := c.Param("id")

	item, src, err := rc.load(c, id)
	if err != nil {
		rc.loadFailed(c, err, "Edit "+d.Singular)
		return
	}
	values, err := d.Schema.FromEntity(item)
	if err != nil {
		rc.Log.Error().Err(err).Str("resource", d.Key).Msg("Failed to seed form")
		rc.flashRedirect(c, session.FlashError, apperrors.GenericMessage, d.Path)
		return
	}
	rc.renderForm(c, http.StatusOK, forms.Edit, id, values, nil, src, "")
}

// Update handles POST <path>/:id. Only fields that differ from the entity as
// currently stored are sent.
func (rc *ResourceController[T]) Update(c *gin.Context) {
	d := rc.desc
	id := c.Param("id")
	values, refresh, bindErr := bindForm(c, d.Schema)

	item, src, err := rc.load(c, id)
	if err != nil {
		if apperrors.Classify(err) == apperrors.KindNotFound {
			rc.loadFailed(c, err, "Edit "+d.Singular)
			return
		}
		if rc.sessionExpired(c, err) {
			return
		}
		// Keep the submitted input.
		rc.Log.Error().Err(err).Str("resource", d.Key).Str("id", id).Msg("Failed to reload entity")
		rc.renderForm(c, failureStatus(err), forms.Edit, id, values, nil, forms.Sources{}, apperrors.UserMessage(err, ""))
		return
	}
	original, err := d.Schema.FromEntity(item)
	if err != nil {
		rc.Log.Error().Err(err).Str("resource", d.Key).Msg("Failed to seed form")
		rc.flashRedirect(c, session.FlashError, apperrors.GenericMessage, d.Path)
		return
	}
	keepImmutable(d.Schema, values, original)

	if bindErr != nil {
		rc.Log.Warn().Err(bindErr).Str("resource", d.Key).Msg("Malformed form body")
		rc.renderForm(c, http.StatusBadRequest, forms.Edit, id, values, nil, src, apperrors.GenericMessage)
		return
	}

	if refresh {
		rc.renderForm(c, http.StatusOK, forms.Edit, id, values, nil, src, "")
		return
	}
	if errs := d.Schema.Validate(values, src, forms.Edit); errs.Any() {
		rc.renderForm(c, http.StatusUnprocessableEntity, forms.Edit, id, values, errs, src, d.Schema.Summary(errs))
		return
	}

	payload := d.Schema.Payload(values, original, forms.Edit)
	if len(payload) == 0 {
		rc.flashRedirect(c, session.FlashSuccess, NoChangesMessage, d.Path)
		return
	}

	release, err := rc.acquire(c, d.Key+":"+id)
	if err != nil {
		rc.renderForm(c, http.StatusConflict, forms.Edit, id, values, nil, src, mutationMessage(err))
		return
	}
	defer release()

	if _, err := rc.api(c).Update(c.Request.Context(), id, payload); err != nil {
		if rc.sessionExpired(c, err) {
			return
		}
		rc.Log.Warn().Err(err).Str("resource", d.Key).Str("id", id).Msg("Update rejected")
		rc.renderForm(c, failureStatus(err), forms.Edit, id, values, nil, src, mutationMessage(err))
		return
	}
	rc.flashRedirect(c, session.FlashSuccess, d.UpdatedFlash, d.Path)
}

func (rc *ResourceController[T]) renderForm(c *gin.Context, status int, mode forms.Mode, id string, values forms.Values, errs forms.Errors, src forms.Sources, message string) {
	d := rc.desc
	page := views.FormPage{
		Action:     d.Path,
		CancelPath: d.Path,
		Error:      message,
		Fields:     views.Fields(d.Schema, values, errs, src, mode),
		Hidden:     views.Hidden(d.Schema, values),
	}
	if mode == forms.Edit {
		page.Heading = "Edit " + d.Singular
		page.Action = rc.itemPath(id, "")
		page.SubmitLabel = "Save changes"
	} else {
		page.Heading = "Add " + d.Singular
		page.SubmitLabel = "Create"
	}
	page.Layout = rc.layout(c, page.Heading)
	rc.render(c, status, views.PageForm, page)
}

// Show handles GET <path>/:id.
func (rc *ResourceController[T]) Show(c *gin.Context) {
	d := rc.desc
	id := c.Param("id")

	item, err := rc.api(c).Get(c.Request.Context(), id)
	if err != nil {
		rc.loadFailed(c, err, d.Singular)
		return
	}

	page := views.DetailPage{
		Layout:   rc.layout(c, d.Title(item)),
		Heading:  d.Title(item),
		BackPath: d.Path,
	}
	if d.CanEdit {
		page.EditPath = rc.itemPath(id, "/edit")
	}
	for _, group := range d.Detail {
		g := views.DetailGroup{Title: group.Title}
		for _, it := range group.Items {
			g.Items = append(g.Items, views.DetailItem{Label: it.Label, Value: it.Value(item)})
		}
		page.Groups = append(page.Groups, g)
	}
	rc.render(c, http.StatusOK, views.PageDetail, page)
}

// loadFailed renders the state of a page whose entity could not be fetched: a
// not-found state for 404s, otherwise an unavailable state with the error's display message.
func (rc *ResourceController[T]) loadFailed(c *gin.Context, err error, heading string) {
	if rc.sessionExpired(c, err) {
		return
	}
	d := rc.desc
	state, message := views.StateNotFound, d.NotFoundText
	if apperrors.Classify(err) != apperrors.KindNotFound {
		rc.Log.Error().Err(err).Str("resource", d.Key).Str("id", c.Param("id")).Msg("Failed to load entity")
		state, message = views.StateUnavailable, apperrors.UserMessage(err, "")
	}
	rc.render(c, failureStatus(err), views.PageDetail, views.DetailPage{
		Layout:       rc.layout(c, heading),
		Heading:      heading,
		BackPath:     d.Path,
		State:        state,
		StateMessage: message,
	})
}

// ConfirmDelete handles GET <path>/:id/delete.
func (rc *ResourceController[T]) ConfirmDelete(c *gin.Context) {
	d := rc.desc
	id := c.Param("id")

	item, err := rc.api(c).Get(c.Request.Context(), id)
	if err != nil {
		if rc.sessionExpired(c, err) {
			return
		}
		message := d.NotFoundText
		if apperrors.Classify(err) != apperrors.KindNotFound {
			message = apperrors.UserMessage(err, "")
		}
		rc.flashRedirect(c, session.FlashError, message, d.Path)
		return
	}

	heading := "Delete " + d.Singular
	rc.render(c, http.StatusOK, views.PageConfirmDelete, views.ConfirmDeletePage{
		Layout:     rc.layout(c, heading),
		Heading:    heading,
		ItemTitle:  d.Title(item),
		Warning:    d.DeleteWarning,
		Action:     rc.itemPath(id, "/delete"),
		CancelPath: d.Path,
	})
}

// Delete handles POST <path>/:id/delete. Failures return to the list with an
// error flash.
func (rc *ResourceController[T]) Delete(c *gin.Context) {
	d := rc.desc
	id := c.Param("id")

	release, err := rc.acquire(c, d.Key+":delete:"+id)
	if err != nil {
		rc.flashRedirect(c, session.FlashError, mutationMessage(err), d.Path)
		return
	}
	defer release()

	if err := rc.api(c).Delete(c.Request.Context(), id); err != nil {
		if rc.sessionExpired(c, err) {
			return
		}
		rc.Log.Warn().Err(err).Str("resource", d.Key).Str("id", id).Msg("Delete rejected")
		rc.flashRedirect(c, session.FlashError, mutationMessage(err), d.Path)
		return
	}
	rc.flashRedirect(c, session.FlashSuccess, d.DeletedFlash, d.Path)
}

// pageIndex is a half-open slice range.
type pageIndex struct {
	start, end int
}

// listState is the search, sort and paging state of a list request.
type listState struct {
	query   url.Values
	q       string
	sortKey string
	dir     string
	page    int
	limit   int
}

func newListState(c *gin.Context, pageSize int) listState {
	s := listState{
		query:   c.Request.URL.Query(),
		q:       strings.TrimSpace(c.Query("q")),
		sortKey: c.Query("sort"),
		dir:     c.DefaultQuery("dir", "asc"),
		page:    1,
		limit:   pageSize,
	}
	if s.dir != "desc" {
		s.dir = "asc"
	}
	if n, err := strconv.Atoi(c.Query("page")); err == nil && n > 0 {
		s.page = n
	}
	return s
}

// link returns path with the current query overridden by set. Empty values remove
// the parameter.
func (s listState) link(path string, set map[string]string) string {
	q := url.Values{}
	for k, v := range s.query {
		q[k] = append([]string(nil), v...)
	}
	for k, v := range set {
		if v == "" {
			q.Del(k)
		} else {
			q.Set(k, v)
		}
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
