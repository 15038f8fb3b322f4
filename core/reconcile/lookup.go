package reconcile

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Lookup maps normalized identifiers to record ids.
// Keys keep their first insertion position; values are last-wins.
type Lookup struct {
	m          *orderedmap.OrderedMap[string, string]
	collisions int
}

// BuildLookup indexes reference entries in order, skipping entries without
// an identifier.
func BuildLookup(reference []Entry) *Lookup {
	l := &Lookup{m: orderedmap.New[string, string]()}
	for _, e := range reference {
		if e.Repo == "" {
			continue
		}
		if _, present := l.m.Set(e.Repo, e.RecordID); present {
			l.collisions++
		}
	}
	return l
}

// Get returns the record id stored for repo.
func (l *Lookup) Get(repo string) (string, bool) {
	return l.m.Get(repo)
}

// Len returns the number of distinct identifiers.
func (l *Lookup) Len() int {
	return l.m.Len()
}

// Collisions returns how many inserts replaced an existing record id.
func (l *Lookup) Collisions() int {
	return l.collisions
}

// Repos returns every identifier in first-insertion order.
func (l *Lookup) Repos() []string {
	out := make([]string, 0, l.m.Len())
	for pair := l.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}
