package items

import (
	"fmt"
	"strings"

	"gallerygrid/pkg/gallery/catalog"
)

// PageKind identifies which page a grid is built for.
type PageKind int

// Page kinds
const (
	PageLanding PageKind = iota
	PageCategory
	PageWork
)

func (k PageKind) String() string {
	switch k {
	case PageLanding:
		return "landing"
	case PageCategory:
		return "category"
	case PageWork:
		return "work"
	default:
		return "unknown"
	}
}

// PageContext selects the page. CategoryID is set on category pages, WorkID
// on work pages.
type PageContext struct {
	Kind       PageKind
	CategoryID string
	WorkID     string
}

// Pool is the item list a grid is tiled from plus the page extras that
// appear exactly once.
type Pool struct {
	Items  []Item
	Extras []Item
}

// Len returns the number of distinct entries.
func (p Pool) Len() int { return len(p.Items) + len(p.Extras) }

// BuildPool collects the cards of a page.
func BuildPool(ds *catalog.Dataset, page PageContext) (Pool, error) {
	if ds == nil {
		ds = &catalog.Dataset{}
	}
	var pool Pool
	switch page.Kind {
	case PageLanding:
		for _, w := range ds.NewestPerCategory() {
			pool.Items = append(pool.Items, &WorkCard{Work: w})
		}
		for _, c := range ds.Categories {
			pool.Items = append(pool.Items, &CategoryCard{Category: c})
		}
		if ds.Owner != nil {
			pool.Extras = append(pool.Extras, &OwnerCard{Owner: ds.Owner})
		}

	case PageCategory:
		cat, err := ds.CategoryByID(page.CategoryID)
		if err != nil {
			return Pool{}, fmt.Errorf("category %q: %w", page.CategoryID, err)
		}
		for _, w := range ds.WorksInCategory(cat.ID) {
			pool.Items = append(pool.Items, &WorkCard{Work: w})
		}
		ids := make([]string, len(ds.Categories))
		for i, c := range ds.Categories {
			ids[i] = c.ID
		}
		pool.Extras = navigation(ids, cat.ID, "", cat.Color)

	case PageWork:
		w, err := ds.WorkByID(page.WorkID)
		if err != nil {
			return Pool{}, fmt.Errorf("work %q: %w", page.WorkID, err)
		}
		pool.Items = append(pool.Items,
			&WorkCard{Work: w},
			&TextPanel{Kind: PanelDetail, Work: w},
		)
		if w.Synopsis != "" {
			pool.Items = append(pool.Items, &TextPanel{Kind: PanelSynopsis, Work: w})
		}
		if len(w.Exhibitions) > 0 {
			pool.Items = append(pool.Items, &TextPanel{Kind: PanelExhibitions, Work: w})
		}
		if len(w.Colabs) > 0 {
			pool.Items = append(pool.Items, &TextPanel{Kind: PanelColabs, Work: w})
		}
		siblings := ds.WorksInCategory(w.CategoryID)
		ids := make([]string, len(siblings))
		for i, s := range siblings {
			ids[i] = s.ID
		}
		color := ""
		if w.Category != nil {
			color = w.Category.Color
		}
		pool.Extras = navigation(ids, w.ID, w.CategoryID, color)

	default:
		return Pool{}, fmt.Errorf("unknown page kind %d", page.Kind)
	}

	if len(pool.Items) == 0 {
		pool.Items = []Item{&PlaceholderCard{}}
	}
	return pool, nil
}

// navigation builds the up/next/previous cards for current within siblings.
// Next and previous wrap around the sibling list.
func navigation(siblings []string, current, parent, color string) []Item {
	out := make([]Item, 0, 3)
	for _, d := range AllDirections() {
		target := parent
		if d != Up {
			target = sibling(siblings, current, d.Step())
		}
		out = append(out, &NavigationCard{Direction: d, Target: target, Color: color})
	}
	return out
}

func sibling(ids []string, current string, step int) string {
	n := len(ids)
	for i, id := range ids {
		if id == current {
			return ids[((i+step)%n+n)%n]
		}
	}
	return current
}

// ParsePage reads a page reference: "landing", "category:<id>" or
// "work:<id>".
func ParsePage(s string) (PageContext, error) {
	kind, id, _ := strings.Cut(strings.TrimSpace(s), ":")
	switch strings.ToLower(kind) {
	case "", "landing":
		return PageContext{Kind: PageLanding}, nil
	case "category":
		if id == "" {
			return PageContext{}, fmt.Errorf("page %q: missing category id", s)
		}
		return PageContext{Kind: PageCategory, CategoryID: id}, nil
	case "work":
		if id == "" {
			return PageContext{}, fmt.Errorf("page %q: missing work id", s)
		}
		return PageContext{Kind: PageWork, WorkID: id}, nil
	}
	return PageContext{}, fmt.Errorf("page %q: unknown kind %q", s, kind)
}
