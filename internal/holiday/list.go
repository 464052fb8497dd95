package holiday

import (
	"sort"

	"github.com/tartampluch/go-holiday/internal/caldate"
)

// Entry is one holiday of a generated list.
type Entry struct {
	Date caldate.Date `json:"date"`
	Name string       `json:"name"`
}

// List is ordered ascending by date and holds at most one entry per date.
type List []Entry

// Map returns the list as a mapping from YYYY-MM-DD to name.
func (l List) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, e := range l {
		m[e.Date.String()] = e.Name
	}
	return m
}

// Lookup returns the holiday name on d.
func (l List) Lookup(d caldate.Date) (string, bool) {
	i := sort.Search(len(l), func(i int) bool { return !l[i].Date.Before(d) })
	if i < len(l) && l[i].Date == d {
		return l[i].Name, true
	}
	return "", false
}

// Contains reports whether d is a holiday in the list.
func (l List) Contains(d caldate.Date) bool {
	_, ok := l.Lookup(d)
	return ok
}

// Dates returns the dates of the list in order.
func (l List) Dates() []caldate.Date {
	out := make([]caldate.Date, len(l))
	for i, e := range l {
		out[i] = e.Date
	}
	return out
}
