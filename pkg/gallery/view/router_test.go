package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallerygrid/pkg/gallery/catalog"
	"gallerygrid/pkg/gallery/items"
)

func TestRouterFollowsActivations(t *testing.T) {
	v := newTestView(t)
	r := NewRouter(v, loadDataset(t))
	var shown []items.PageKind
	r.OnPage = func(p items.PageContext) { shown = append(shown, p.Kind) }

	require.NoError(t, r.Go(items.PageContext{Kind: items.PageLanding}))
	cb := r.callbacks()

	cb.OnCategory(&items.CategoryCard{Category: &catalog.Category{ID: "cat-video"}})
	assert.Equal(t, items.PageContext{Kind: items.PageCategory, CategoryID: "cat-video"}, r.Page())

	cb.OnWork(&items.WorkCard{Work: &catalog.Work{ID: "w1", CategoryID: "cat-video"}})
	assert.Equal(t, items.PageContext{Kind: items.PageWork, WorkID: "w1"}, r.Page())

	r.callbacks().OnNavigate(items.Next, "w4")
	assert.Equal(t, items.PageContext{Kind: items.PageWork, WorkID: "w4"}, r.Page())

	r.callbacks().OnNavigate(items.Up, "cat-video")
	assert.Equal(t, items.PageContext{Kind: items.PageCategory, CategoryID: "cat-video"}, r.Page())

	r.callbacks().OnNavigate(items.Up, "")
	assert.Equal(t, items.PageLanding, r.Page().Kind)

	assert.Equal(t, []items.PageKind{
		items.PageLanding, items.PageCategory, items.PageWork, items.PageWork, items.PageCategory, items.PageLanding,
	}, shown)
}

func TestRouterBack(t *testing.T) {
	v := newTestView(t)
	r := NewRouter(v, loadDataset(t))
	require.NoError(t, r.Go(items.PageContext{Kind: items.PageLanding}))
	require.NoError(t, r.Go(items.PageContext{Kind: items.PageCategory, CategoryID: "cat-print"}))
	require.NoError(t, r.Go(items.PageContext{Kind: items.PageWork, WorkID: "w2"}))

	assert.True(t, r.Back())
	assert.Equal(t, "cat-print", r.Page().CategoryID)
	assert.True(t, r.Back())
	assert.Equal(t, items.PageLanding, r.Page().Kind)
	assert.False(t, r.Back())
}

func TestRouterFailedNavigationKeepsPage(t *testing.T) {
	v := newTestView(t)
	r := NewRouter(v, loadDataset(t))
	require.NoError(t, r.Go(items.PageContext{Kind: items.PageLanding}))

	err := r.Go(items.PageContext{Kind: items.PageWork, WorkID: "missing"})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Equal(t, items.PageLanding, r.Page().Kind)
	assert.Positive(t, v.Grid().Live())
}

func TestRouterReloadFallsBackToLanding(t *testing.T) {
	v := newTestView(t)
	r := NewRouter(v, loadDataset(t))
	require.NoError(t, r.Go(items.PageContext{Kind: items.PageWork, WorkID: "w3"}))

	empty := &catalog.Dataset{}
	require.NoError(t, r.Reload(empty))
	assert.Equal(t, items.PageLanding, r.Page().Kind)
	assert.Same(t, empty, r.Dataset())
}

func TestRouterForwardsLinks(t *testing.T) {
	v := newTestView(t)
	r := NewRouter(v, loadDataset(t))
	var got string
	r.OnLink = func(url string) { got = url }
	r.callbacks().OnLink("https://example.org")
	assert.Equal(t, "https://example.org", got)
}
