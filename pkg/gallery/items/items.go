// Package items defines what a card on the wall can represent. Items are
// built once per page load and never reference the card objects that
// render them.
package items

import (
	"fmt"

	"gallerygrid/pkg/gallery/catalog"
)

// Item is a sealed variant over the card kinds below.
type Item interface {
	// ID is stable for the lifetime of a dataset. Tiled copies of the same
	// record share an id.
	ID() string
	isItem()
}

// WorkCard shows a work's image with its title and date.
type WorkCard struct {
	Work *catalog.Work
}

// CategoryCard links to a category page.
type CategoryCard struct {
	Category *catalog.Category
}

// NavigationCard moves between sibling pages or up one level. Target is the
// id of the page it leads to; empty means the landing page.
type NavigationCard struct {
	Direction Direction
	Target    string
	Color     string
}

// OwnerCard presents the gallery owner.
type OwnerCard struct {
	Owner *catalog.Owner
}

// PanelKind selects the text layout of a TextPanel.
type PanelKind int

// Panel kinds
const (
	PanelDetail PanelKind = iota
	PanelSynopsis
	PanelExhibitions
	PanelColabs
)

func (k PanelKind) String() string {
	switch k {
	case PanelDetail:
		return "detail"
	case PanelSynopsis:
		return "synopsis"
	case PanelExhibitions:
		return "exhibitions"
	case PanelColabs:
		return "colabs"
	default:
		return "unknown"
	}
}

// TextPanel is one of the text cards of a work page.
type TextPanel struct {
	Kind PanelKind
	Work *catalog.Work
}

// PlaceholderCard fills the grid when a page has nothing to show.
type PlaceholderCard struct {
	Label string
}

func (c *WorkCard) ID() string        { return "work:" + c.Work.ID }
func (c *CategoryCard) ID() string    { return "category:" + c.Category.ID }
func (c *NavigationCard) ID() string  { return "nav:" + c.Direction.String() }
func (c *OwnerCard) ID() string       { return "owner:" + c.Owner.ID }
func (c *TextPanel) ID() string       { return fmt.Sprintf("panel:%s:%s", c.Kind, c.Work.ID) }
func (c *PlaceholderCard) ID() string { return "placeholder" }

func (*WorkCard) isItem()        {}
func (*CategoryCard) isItem()    {}
func (*NavigationCard) isItem()  {}
func (*OwnerCard) isItem()       {}
func (*TextPanel) isItem()       {}
func (*PlaceholderCard) isItem() {}

// Visitor handles every item kind. Adding a kind adds a method here, so every
// visitor stops compiling until it handles the new kind.
type Visitor[T any] interface {
	Work(*WorkCard) T
	Category(*CategoryCard) T
	Navigation(*NavigationCard) T
	Owner(*OwnerCard) T
	Panel(*TextPanel) T
	Placeholder(*PlaceholderCard) T
}

// Match dispatches it to the matching visitor method.
func Match[T any](it Item, v Visitor[T]) T {
	switch c := it.(type) {
	case *WorkCard:
		return v.Work(c)
	case *CategoryCard:
		return v.Category(c)
	case *NavigationCard:
		return v.Navigation(c)
	case *OwnerCard:
		return v.Owner(c)
	case *TextPanel:
		return v.Panel(c)
	case *PlaceholderCard:
		return v.Placeholder(c)
	}
	panic(fmt.Sprintf("items: unhandled item %T", it))
}

// CategoryOf returns the category an item is coloured by, or nil.
func CategoryOf(it Item) *catalog.Category {
	switch c := it.(type) {
	case *WorkCard:
		return c.Work.Category
	case *CategoryCard:
		return c.Category
	case *TextPanel:
		return c.Work.Category
	}
	return nil
}
