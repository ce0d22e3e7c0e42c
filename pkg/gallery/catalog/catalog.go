// Package catalog holds the creative-work records shown on the card wall and
// the queries the pages run against an already loaded dataset.
package catalog

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// ErrNotFound is returned when a record lookup fails.
var ErrNotFound = errors.New("record not found")

// Collection names used when resolving file URLs.
const (
	CollectionWorks      = "works"
	CollectionCategories = "categories"
	CollectionUsers      = "users"
)

// Category groups works and gives their cards a colour.
type Category struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Color string `yaml:"color"`
	Thumb string `yaml:"thumb,omitempty"`
}

// Exhibition is a place a work was shown.
type Exhibition struct {
	Title    string `yaml:"title"`
	Date     string `yaml:"date,omitempty"`
	Location string `yaml:"location,omitempty"`
	Link     string `yaml:"link,omitempty"`
}

// Colab is a collaborator credited on a work.
type Colab struct {
	Title string `yaml:"title"`
	Link  string `yaml:"link,omitempty"`
}

// Work is a single creative work.
type Work struct {
	ID          string       `yaml:"id"`
	Title       string       `yaml:"title"`
	Date        string       `yaml:"date,omitempty"`
	Type        string       `yaml:"type,omitempty"`
	Format      string       `yaml:"format,omitempty"`
	Synopsis    string       `yaml:"synopsis,omitempty"`
	Edition     string       `yaml:"edition,omitempty"`
	Dimension   string       `yaml:"dimension,omitempty"`
	Thumb       string       `yaml:"thumb,omitempty"`
	Colabs      []Colab      `yaml:"colabs,omitempty"`
	Exhibitions []Exhibition `yaml:"exhibitions,omitempty"`
	CategoryID  string       `yaml:"category,omitempty"`

	// Category is resolved after loading; nil when the reference is unknown.
	Category *Category `yaml:"-"`
}

// Time parses the work date. The zero time is returned when the date is
// missing or malformed.
func (w *Work) Time() time.Time {
	return ParseDate(w.Date)
}

// Owner is the person the gallery belongs to.
type Owner struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Avatar string `yaml:"avatar,omitempty"`
	Bio    string `yaml:"bio,omitempty"`
}

// Dataset is everything a page needs to build its grid.
type Dataset struct {
	Categories []*Category `yaml:"categories"`
	Works      []*Work     `yaml:"works"`
	Owner      *Owner      `yaml:"owner,omitempty"`
}

// Resolve links every work to its category and orders categories by title
// descending and works by date descending, the order the pages display them in.
func (d *Dataset) Resolve() {
	byID := make(map[string]*Category, len(d.Categories))
	for _, c := range d.Categories {
		byID[c.ID] = c
	}
	for _, w := range d.Works {
		w.Category = byID[w.CategoryID]
	}
	sort.SliceStable(d.Categories, func(i, j int) bool {
		return d.Categories[i].Title > d.Categories[j].Title
	})
	sort.SliceStable(d.Works, func(i, j int) bool {
		return d.Works[i].Time().After(d.Works[j].Time())
	})
}

// CategoryByID returns the category with the given id.
func (d *Dataset) CategoryByID(id string) (*Category, error) {
	for _, c := range d.Categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

// CategoryByTitle returns the category whose title matches, ignoring case.
func (d *Dataset) CategoryByTitle(title string) (*Category, error) {
	for _, c := range d.Categories {
		if strings.EqualFold(c.Title, title) {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

// WorkByID returns the work with the given id.
func (d *Dataset) WorkByID(id string) (*Work, error) {
	for _, w := range d.Works {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, ErrNotFound
}

// WorksInCategory returns the works of one category, newest first.
func (d *Dataset) WorksInCategory(categoryID string) []*Work {
	var out []*Work
	for _, w := range d.Works {
		if w.CategoryID == categoryID {
			out = append(out, w)
		}
	}
	return out
}

// NewestPerCategory returns the newest work of every category that has one,
// in category order.
func (d *Dataset) NewestPerCategory() []*Work {
	var out []*Work
	for _, c := range d.Categories {
		if works := d.WorksInCategory(c.ID); len(works) > 0 {
			out = append(out, works[0])
		}
	}
	return out
}

var dateLayouts = []string{
	"2006-01-02 15:04:05.000Z",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01",
}

// ParseDate parses the date formats found in datasets.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
