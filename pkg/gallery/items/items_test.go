package items

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallerygrid/pkg/gallery/catalog"
)

func fixture(t *testing.T) *catalog.Dataset {
	t.Helper()
	ds, err := catalog.Load(filepath.Join("..", "..", "..", "testdata", "gallery.yaml"))
	require.NoError(t, err)
	return ds
}

func ids(list []Item) []string {
	out := make([]string, len(list))
	for i, it := range list {
		out[i] = it.ID()
	}
	return out
}

func TestBuildPool_Landing(t *testing.T) {
	pool, err := BuildPool(fixture(t), PageContext{Kind: PageLanding})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"work:w1", "work:w2", "work:w3",
		"category:cat-video", "category:cat-print", "category:cat-install",
	}, ids(pool.Items))
	assert.Equal(t, []string{"owner:owner1"}, ids(pool.Extras))
	assert.Equal(t, 7, pool.Len())
}

func TestBuildPool_CategoryNavigationWraps(t *testing.T) {
	ds := fixture(t)

	pool, err := BuildPool(ds, PageContext{Kind: PageCategory, CategoryID: "cat-video"})
	require.NoError(t, err)
	assert.Equal(t, []string{"work:w1", "work:w4"}, ids(pool.Items))
	require.Len(t, pool.Extras, 3)

	// Categories are ordered Video, Print, Installation.
	targets := map[Direction]string{}
	for _, it := range pool.Extras {
		nav := it.(*NavigationCard)
		targets[nav.Direction] = nav.Target
		assert.Equal(t, "#ff6b6b", nav.Color)
	}
	assert.Equal(t, "", targets[Up])
	assert.Equal(t, "cat-print", targets[Next])
	assert.Equal(t, "cat-install", targets[Previous])
}

func TestBuildPool_WorkPage(t *testing.T) {
	pool, err := BuildPool(fixture(t), PageContext{Kind: PageWork, WorkID: "w1"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"work:w1",
		"panel:detail:w1",
		"panel:synopsis:w1",
		"panel:exhibitions:w1",
		"panel:colabs:w1",
	}, ids(pool.Items))

	nav := pool.Extras[0].(*NavigationCard)
	assert.Equal(t, Up, nav.Direction)
	assert.Equal(t, "cat-video", nav.Target)
	assert.Equal(t, "w4", pool.Extras[1].(*NavigationCard).Target)
	assert.Equal(t, "w4", pool.Extras[2].(*NavigationCard).Target)
}

func TestBuildPool_WorkPageSkipsEmptyPanels(t *testing.T) {
	pool, err := BuildPool(fixture(t), PageContext{Kind: PageWork, WorkID: "w3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"work:w3", "panel:detail:w3"}, ids(pool.Items))
	// Only work in its category: siblings point back at itself.
	assert.Equal(t, "w3", pool.Extras[1].(*NavigationCard).Target)
}

func TestBuildPool_EmptyDatasetUsesPlaceholder(t *testing.T) {
	pool, err := BuildPool(nil, PageContext{Kind: PageLanding})
	require.NoError(t, err)
	require.Len(t, pool.Items, 1)
	_, ok := pool.Items[0].(*PlaceholderCard)
	assert.True(t, ok)
	assert.Empty(t, pool.Extras)
}

func TestBuildPool_UnknownPage(t *testing.T) {
	_, err := BuildPool(fixture(t), PageContext{Kind: PageCategory, CategoryID: "nope"})
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = BuildPool(fixture(t), PageContext{Kind: PageWork, WorkID: "nope"})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestCallbacks_Action(t *testing.T) {
	var got []string
	cb := Callbacks{
		OnWork:     func(c *WorkCard) { got = append(got, "work "+c.Work.ID) },
		OnNavigate: func(d Direction, target string) { got = append(got, d.String()+" "+target) },
	}
	w := &WorkCard{Work: &catalog.Work{ID: "w1"}}
	cb.Action(w)()
	cb.Action(&NavigationCard{Direction: Next, Target: "w2"})()

	assert.Nil(t, cb.Action(&CategoryCard{Category: &catalog.Category{ID: "c"}}))
	assert.Nil(t, cb.Action(&TextPanel{Kind: PanelSynopsis, Work: w.Work}))
	assert.Nil(t, cb.Action(&PlaceholderCard{}))
	assert.Equal(t, []string{"work w1", "Next w2"}, got)
}

func TestDirection(t *testing.T) {
	for _, d := range AllDirections() {
		assert.True(t, d.IsValid())
	}
	assert.False(t, Direction(9).IsValid())
	assert.Equal(t, Previous, Next.Opposite())
	assert.Equal(t, Up, Up.Opposite())
	assert.Equal(t, -1, Previous.Step())
	assert.Equal(t, "Unknown", Direction(9).String())
}

func TestCategoryOf(t *testing.T) {
	cat := &catalog.Category{ID: "c"}
	w := &catalog.Work{ID: "w", Category: cat}
	assert.Same(t, cat, CategoryOf(&WorkCard{Work: w}))
	assert.Same(t, cat, CategoryOf(&TextPanel{Work: w}))
	assert.Nil(t, CategoryOf(&NavigationCard{}))
}

func TestPageTitle(t *testing.T) {
	ds := fixture(t)
	assert.Equal(t, "Mara Vidal", PageContext{Kind: PageLanding}.Title(ds))
	assert.Equal(t, "Print", PageContext{Kind: PageCategory, CategoryID: "cat-print"}.Title(ds))
	assert.Equal(t, "Tidal Archive", PageContext{Kind: PageWork, WorkID: "w1"}.Title(ds))
	assert.Equal(t, "Gallery", PageContext{Kind: PageWork, WorkID: "missing"}.Title(ds))
	assert.Equal(t, "Gallery", PageContext{}.Title(nil))
}

func TestParsePage(t *testing.T) {
	cases := map[string]PageContext{
		"":                   {Kind: PageLanding},
		"landing":            {Kind: PageLanding},
		"category:cat-video": {Kind: PageCategory, CategoryID: "cat-video"},
		"Work:w1":            {Kind: PageWork, WorkID: "w1"},
	}
	for in, want := range cases {
		got, err := ParsePage(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"category", "work:", "gallery:1"} {
		_, err := ParsePage(bad)
		assert.Error(t, err, bad)
	}
}
