package items

import (
	"github.com/leonelquinteros/gotext"

	"gallerygrid/pkg/gallery/catalog"
)

// Title returns the heading of page: the owner's name on the landing page,
// else the category or work title.
func (p PageContext) Title(ds *catalog.Dataset) string {
	if ds == nil {
		ds = &catalog.Dataset{}
	}
	switch p.Kind {
	case PageCategory:
		if c, err := ds.CategoryByID(p.CategoryID); err == nil {
			return c.Title
		}
	case PageWork:
		if w, err := ds.WorkByID(p.WorkID); err == nil {
			return w.Title
		}
	default:
		if ds.Owner != nil && ds.Owner.Name != "" {
			return ds.Owner.Name
		}
	}
	return gotext.Get("Gallery")
}
