package atomx

import (
	"github.com/llxisdsh/pb"
)

// Group is a registry of named Counters.
//
// The zero value is ready to use. Lookups are lock-free, and creation is
// duplicate-suppressed: concurrent Gets for a new name all observe the
// same Counter instance.
type Group struct {
	m pb.MapOf[string, *Counter]
}

// Get returns the Counter registered under name, creating it at 0 on
// first use.
func (g *Group) Get(name string) *Counter {
	var c *Counter
	_, _ = g.m.ProcessEntry(
		name,
		func(l *pb.EntryOf[string, *Counter]) (*pb.EntryOf[string, *Counter], *Counter, bool) {
			if l != nil {
				c = l.Value
				return l, c, true
			}
			c = new(Counter)
			return &pb.EntryOf[string, *Counter]{Value: c}, c, false
		},
	)
	return c
}

// Add adds delta to the counter registered under name, creating it if
// needed, and returns the value immediately before the addition.
func (g *Group) Add(name string, delta uint32) uint32 {
	return g.Get(name).Add(delta)
}

// Remove drops name from the registry. A Counter obtained earlier stays
// valid but is no longer reachable through Get.
func (g *Group) Remove(name string) {
	g.m.Delete(name)
}
