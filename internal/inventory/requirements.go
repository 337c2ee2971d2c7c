package inventory

// Requirements is an insertion-ordered multiset of ingredient ids. The order
// ingredients were first required is the order shortages are reported in,
// which keeps simulation records deterministic for a fixed random stream.
type Requirements struct {
	ids    []string
	counts map[string]int
}

func NewRequirements() *Requirements {
	return &Requirements{counts: make(map[string]int)}
}

// Add requires n more units of id.
func (r *Requirements) Add(id string, n int) {
	if _, ok := r.counts[id]; !ok {
		r.ids = append(r.ids, id)
	}
	r.counts[id] += n
}

// Count returns the total units required for id.
func (r *Requirements) Count(id string) int {
	return r.counts[id]
}

// IDs returns the required ids in first-insertion order.
func (r *Requirements) IDs() []string {
	return r.ids
}

// Len returns the number of distinct ids required.
func (r *Requirements) Len() int {
	return len(r.ids)
}

// RequirementsForItem builds the single-unit requirements of one menu item,
// given its ingredient ids in canonical order.
func RequirementsForItem(ingredientIDs []string) *Requirements {
	req := NewRequirements()
	for _, id := range ingredientIDs {
		req.Add(id, 1)
	}
	return req
}
