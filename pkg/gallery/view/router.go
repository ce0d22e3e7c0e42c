package view

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gallerygrid/pkg/gallery/catalog"
	"gallerygrid/pkg/gallery/items"
)

// Router turns card activations into page changes on a view. It keeps a
// history so hosts can offer a back action.
type Router struct {
	view    *View
	ds      *catalog.Dataset
	page    items.PageContext
	history []items.PageContext
	log     *zap.Logger

	// OnLink receives links activated inside text panels.
	OnLink func(url string)
	// OnPage is called after every successful page change.
	OnPage func(items.PageContext)
}

// NewRouter creates a router over ds. Call Go to show the first page.
func NewRouter(v *View, ds *catalog.Dataset) *Router {
	return &Router{view: v, ds: ds, log: v.log}
}

// Page returns the page on screen.
func (r *Router) Page() items.PageContext { return r.page }

// Dataset returns the dataset pages are built from.
func (r *Router) Dataset() *catalog.Dataset { return r.ds }

// Go shows page and pushes the previous page onto the history.
func (r *Router) Go(page items.PageContext) error {
	prev := r.page
	if err := r.show(page); err != nil {
		return err
	}
	if prev != page {
		r.history = append(r.history, prev)
	}
	return nil
}

// Back returns to the previous page. It reports false when there is none.
func (r *Router) Back() bool {
	for len(r.history) > 0 {
		page := r.history[len(r.history)-1]
		r.history = r.history[:len(r.history)-1]
		if err := r.show(page); err == nil {
			return true
		}
	}
	return false
}

// Reload swaps the dataset and rebuilds the current page, falling back to
// the landing page when the current record disappeared.
func (r *Router) Reload(ds *catalog.Dataset) error {
	r.ds = ds
	err := r.show(r.page)
	if errors.Is(err, catalog.ErrNotFound) {
		r.log.Warn("page vanished after reload, showing landing page", zap.Stringer("page", r.page.Kind))
		r.history = nil
		return r.show(items.PageContext{Kind: items.PageLanding})
	}
	return err
}

func (r *Router) show(page items.PageContext) error {
	r.view.SetLoading(true)
	defer r.view.SetLoading(false)

	plan, err := r.view.BuildGrid(r.ds, page, r.callbacks())
	if err != nil {
		return fmt.Errorf("show %s page: %w", page.Kind, err)
	}
	r.page = page
	r.log.Info("page shown",
		zap.Stringer("kind", page.Kind),
		zap.String("category", page.CategoryID),
		zap.String("work", page.WorkID),
		zap.Stringer("grid", plan.ID),
	)
	if r.OnPage != nil {
		r.OnPage(page)
	}
	return nil
}

func (r *Router) callbacks() items.Callbacks {
	return items.Callbacks{
		OnWork: func(c *items.WorkCard) {
			r.goOrLog(items.PageContext{Kind: items.PageWork, WorkID: c.Work.ID})
		},
		OnCategory: func(c *items.CategoryCard) {
			r.goOrLog(items.PageContext{Kind: items.PageCategory, CategoryID: c.Category.ID})
		},
		OnNavigate: r.navigate,
		OnOwner: func(*items.OwnerCard) {
			r.goOrLog(items.PageContext{Kind: items.PageLanding})
		},
		OnLink: func(url string) {
			if r.OnLink != nil {
				r.OnLink(url)
			}
		},
	}
}

func (r *Router) navigate(dir items.Direction, target string) {
	switch {
	case dir == items.Up && r.page.Kind == items.PageWork && target != "":
		r.goOrLog(items.PageContext{Kind: items.PageCategory, CategoryID: target})
	case dir == items.Up:
		r.goOrLog(items.PageContext{Kind: items.PageLanding})
	case r.page.Kind == items.PageCategory:
		r.goOrLog(items.PageContext{Kind: items.PageCategory, CategoryID: target})
	case r.page.Kind == items.PageWork:
		r.goOrLog(items.PageContext{Kind: items.PageWork, WorkID: target})
	}
}

func (r *Router) goOrLog(page items.PageContext) {
	if err := r.Go(page); err != nil {
		r.log.Warn("navigation failed", zap.Error(err))
	}
}
