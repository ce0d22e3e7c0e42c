package items

// Callbacks are the page-level handlers an activated card invokes. Any of
// them may be nil.
type Callbacks struct {
	OnWork     func(*WorkCard)
	OnCategory func(*CategoryCard)
	OnNavigate func(dir Direction, target string)
	OnOwner    func(*OwnerCard)
	OnLink     func(url string)
}

// Action returns the activation for it, or nil when the card does nothing.
func (cb Callbacks) Action(it Item) func() {
	return Match[func()](it, actions{cb})
}

type actions struct{ cb Callbacks }

func (a actions) Work(c *WorkCard) func() {
	if a.cb.OnWork == nil {
		return nil
	}
	return func() { a.cb.OnWork(c) }
}

func (a actions) Category(c *CategoryCard) func() {
	if a.cb.OnCategory == nil {
		return nil
	}
	return func() { a.cb.OnCategory(c) }
}

func (a actions) Navigation(c *NavigationCard) func() {
	if a.cb.OnNavigate == nil {
		return nil
	}
	return func() { a.cb.OnNavigate(c.Direction, c.Target) }
}

func (a actions) Owner(c *OwnerCard) func() {
	if a.cb.OnOwner == nil {
		return nil
	}
	return func() { a.cb.OnOwner(c) }
}

// Panels only react through their link regions.
func (a actions) Panel(*TextPanel) func() { return nil }

func (a actions) Placeholder(*PlaceholderCard) func() { return nil }
