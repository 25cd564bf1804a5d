package state

// Selection is a cursor into a list. The zero value selects nothing.
type Selection struct {
	index int
	valid bool
}

// Select returns a Selection at i.
func Select(i int) Selection {
	return Selection{index: i, valid: true}
}

// Index returns the selected index and whether anything is selected.
func (s Selection) Index() (int, bool) {
	return s.index, s.valid
}

// Clear deselects.
func (s *Selection) Clear() {
	*s = Selection{}
}

// MoveForward moves the show cursor down by step, stopping at the last show.
// With nothing selected it selects the first show.
func (a *App) MoveForward(step int) {
	if len(a.Shows) == 0 {
		return
	}
	a.Selected = forward(a.Selected, len(a.Shows), step)
	a.syncScroll()
}

// MoveBackward moves the show cursor up by step, stopping at the first show.
// With nothing selected it selects the last show.
func (a *App) MoveBackward(step int) {
	if len(a.Shows) == 0 {
		return
	}
	a.Selected = backward(a.Selected, len(a.Shows), step, len(a.Shows)-1)
	a.syncScroll()
}

// MoveTop selects the first show.
func (a *App) MoveTop() {
	if len(a.Shows) == 0 {
		return
	}
	a.Selected = Select(0)
	a.syncScroll()
}

// MoveBottom selects the last show.
func (a *App) MoveBottom() {
	if len(a.Shows) == 0 {
		return
	}
	a.Selected = Select(len(a.Shows) - 1)
	a.syncScroll()
}

// SeasonForward moves the season cursor down by step.
func (a *App) SeasonForward(step int) {
	n := len(a.ShowView.Seasons)
	if n == 0 {
		return
	}
	a.ShowView.Selected = forward(a.ShowView.Selected, n, step)
}

// SeasonBackward moves the season cursor up by step. Unlike the show list,
// nothing selected moves to the first season.
func (a *App) SeasonBackward(step int) {
	n := len(a.ShowView.Seasons)
	if n == 0 {
		return
	}
	a.ShowView.Selected = backward(a.ShowView.Selected, n, step, 0)
}

// SeasonTop selects the first season.
func (a *App) SeasonTop() {
	if len(a.ShowView.Seasons) == 0 {
		return
	}
	a.ShowView.Selected = Select(0)
}

// SeasonBottom selects the last season.
func (a *App) SeasonBottom() {
	if n := len(a.ShowView.Seasons); n > 0 {
		a.ShowView.Selected = Select(n - 1)
	}
}

func (a *App) syncScroll() {
	if i, ok := a.Selected.Index(); ok {
		a.Scroll.Position = i
	}
}

func forward(sel Selection, n, step int) Selection {
	i, ok := sel.Index()
	if !ok {
		return Select(0)
	}
	return Select(clamp(i+step, 0, n-1))
}

func backward(sel Selection, n, step, unset int) Selection {
	i, ok := sel.Index()
	if !ok {
		return Select(unset)
	}
	return Select(clamp(i-step, 0, n-1))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
