// Package inventory tracks stock quantities per ingredient and implements the
// check-then-consume pattern the sales simulation relies on.
package inventory

// NameResolver maps an ingredient id to its display name for shortage
// reporting. It returns false when the id is unknown.
type NameResolver func(id string) (string, bool)

// Shortage describes one ingredient deficit found by CheckAll.
type Shortage struct {
	ID        string
	Name      string
	Required  int
	Available int
}

// Ledger holds non-negative stock counts keyed by ingredient id. Quantities
// never go below zero; decrements clamp at zero. The check-then-consume pair
// is only safe with a single writer; the simulation engine is single-threaded
// so no locking is done here.
type Ledger struct {
	quantities map[string]int
	resolve    NameResolver
}

// NewLedger builds a ledger over an initial quantity map. The map is copied;
// the resolver may be nil, in which case shortages report the raw id.
func NewLedger(initial map[string]int, resolve NameResolver) *Ledger {
	quantities := make(map[string]int, len(initial))
	for id, q := range initial {
		if q < 0 {
			q = 0
		}
		quantities[id] = q
	}
	return &Ledger{quantities: quantities, resolve: resolve}
}

// Quantity returns the stock for id, zero for unknown ids.
func (l *Ledger) Quantity(id string) int {
	return l.quantities[id]
}

// SetQuantity overwrites the stock for id. Negative values clamp to zero.
func (l *Ledger) SetQuantity(id string, q int) {
	if q < 0 {
		q = 0
	}
	l.quantities[id] = q
}

// Adjust adds delta to the stock for id, clamping the result at zero.
func (l *Ledger) Adjust(id string, delta int) {
	next := l.quantities[id] + delta
	if next < 0 {
		next = 0
	}
	l.quantities[id] = next
}

// Tracked reports whether the ledger has an explicit entry for id. A tracked
// ingredient with zero stock is distinct from one never seen, which matters
// when merging data sources.
func (l *Ledger) Tracked(id string) bool {
	_, ok := l.quantities[id]
	return ok
}

// Remove drops an ingredient from the ledger entirely.
func (l *Ledger) Remove(id string) {
	delete(l.quantities, id)
}

// Available reports whether at least required units of id are in stock.
func (l *Ledger) Available(id string, required int) bool {
	return l.quantities[id] >= required
}

// CheckAll verifies every requirement against the current stock snapshot. It
// is a pure read and reports every shortage, in requirement order, not just
// the first one found.
func (l *Ledger) CheckAll(req *Requirements) (bool, []Shortage) {
	var shortages []Shortage
	for _, id := range req.IDs() {
		required := req.Count(id)
		if l.Available(id, required) {
			continue
		}
		name := id
		if l.resolve != nil {
			if resolved, ok := l.resolve(id); ok {
				name = resolved
			}
		}
		shortages = append(shortages, Shortage{
			ID:        id,
			Name:      name,
			Required:  required,
			Available: l.quantities[id],
		})
	}
	return len(shortages) == 0, shortages
}

// ConsumeAll decrements every requirement, or nothing at all. It re-checks
// availability first so a shortage leaves the ledger untouched and returns
// false. All-or-nothing only holds for a single caller; see the Ledger doc.
func (l *Ledger) ConsumeAll(req *Requirements) bool {
	ok, _ := l.CheckAll(req)
	if !ok {
		return false
	}
	for _, id := range req.IDs() {
		l.Adjust(id, -req.Count(id))
	}
	return true
}

// Snapshot returns a copy of all quantities for persistence.
func (l *Ledger) Snapshot() map[string]int {
	out := make(map[string]int, len(l.quantities))
	for id, q := range l.quantities {
		out[id] = q
	}
	return out
}
