package models

import "sort"

// NameCount is one (name, count) pair of a Counter.
type NameCount struct {
	Name  string
	Count int
}

// Counter counts occurrences by name while remembering first-insertion order.
// Iteration order is the order names were first counted, which keeps
// tie-breaking behaviour specified instead of depending on map iteration.
type Counter struct {
	order  []string
	counts map[string]int
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add increments name by n, registering it on first sight.
func (c *Counter) Add(name string, n int) {
	if _, ok := c.counts[name]; !ok {
		c.order = append(c.order, name)
	}
	c.counts[name] += n
}

// Get returns the current count for name, zero if never added.
func (c *Counter) Get(name string) int {
	return c.counts[name]
}

// Len returns the number of distinct names counted.
func (c *Counter) Len() int {
	return len(c.order)
}

// Counts returns all pairs in first-insertion order.
func (c *Counter) Counts() []NameCount {
	out := make([]NameCount, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, NameCount{Name: name, Count: c.counts[name]})
	}
	return out
}

// MostCommon returns the n highest counts, descending. Ties keep
// first-insertion order; n <= 0 returns every pair.
func (c *Counter) MostCommon(n int) []NameCount {
	out := c.Counts()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
