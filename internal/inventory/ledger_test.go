package inventory

import "testing"

func testResolver(names map[string]string) NameResolver {
	return func(id string) (string, bool) {
		name, ok := names[id]
		return name, ok
	}
}

func TestLedgerClampsAtZero(t *testing.T) {
	l := NewLedger(map[string]int{"bun": 3, "broken": -5}, nil)

	if got := l.Quantity("broken"); got != 0 {
		t.Fatalf("negative initial quantity: got %d, want 0", got)
	}

	l.Adjust("bun", -10)
	if got := l.Quantity("bun"); got != 0 {
		t.Fatalf("after over-decrement: got %d, want 0", got)
	}

	l.SetQuantity("bun", -1)
	if got := l.Quantity("bun"); got != 0 {
		t.Fatalf("after negative set: got %d, want 0", got)
	}

	l.Adjust("bun", 7)
	l.Adjust("bun", -3)
	if got := l.Quantity("bun"); got != 4 {
		t.Fatalf("after adjust sequence: got %d, want 4", got)
	}
}

func TestLedgerTrackedDistinguishesZeroFromUnknown(t *testing.T) {
	l := NewLedger(nil, nil)
	l.SetQuantity("bun", 0)

	if !l.Tracked("bun") {
		t.Fatal("explicitly zeroed ingredient should be tracked")
	}
	if l.Tracked("ghost") {
		t.Fatal("never-seen ingredient should not be tracked")
	}
	if l.Quantity("bun") != 0 || l.Quantity("ghost") != 0 {
		t.Fatal("both should report quantity zero")
	}

	l.Remove("bun")
	if l.Tracked("bun") {
		t.Fatal("removed ingredient should not be tracked")
	}
}

func TestCheckAllReportsEveryShortageInOrder(t *testing.T) {
	l := NewLedger(map[string]int{"bun": 1, "dog": 0, "mayo": 5, "fries": 2}, testResolver(map[string]string{
		"bun": "Classic Bun",
		"dog": "Frankfurter",
	}))

	req := NewRequirements()
	req.Add("bun", 3)
	req.Add("dog", 1)
	req.Add("mayo", 2)
	req.Add("fries", 4)

	ok, shortages := l.CheckAll(req)
	if ok {
		t.Fatal("CheckAll should fail")
	}
	if len(shortages) != 3 {
		t.Fatalf("got %d shortages, want 3", len(shortages))
	}

	wantIDs := []string{"bun", "dog", "fries"}
	for i, want := range wantIDs {
		if shortages[i].ID != want {
			t.Errorf("shortage %d: got id %s, want %s", i, shortages[i].ID, want)
		}
	}
	if shortages[0].Name != "Classic Bun" || shortages[0].Required != 3 || shortages[0].Available != 1 {
		t.Errorf("bun shortage: got %+v", shortages[0])
	}
	// No resolver entry for fries: the raw id stands in.
	if shortages[2].Name != "fries" {
		t.Errorf("unresolved shortage name: got %s, want fries", shortages[2].Name)
	}
}

func TestCheckAllIsAPureRead(t *testing.T) {
	l := NewLedger(map[string]int{"bun": 2, "dog": 2}, nil)
	req := NewRequirements()
	req.Add("bun", 1)
	req.Add("dog", 1)

	for i := 0; i < 3; i++ {
		if ok, _ := l.CheckAll(req); !ok {
			t.Fatalf("check %d failed", i)
		}
	}
	if l.Quantity("bun") != 2 || l.Quantity("dog") != 2 {
		t.Fatal("CheckAll must not consume stock")
	}
}

func TestConsumeAllIsAllOrNothing(t *testing.T) {
	l := NewLedger(map[string]int{"bun": 5, "dog": 1}, nil)

	req := NewRequirements()
	req.Add("bun", 2)
	req.Add("dog", 2)
	if l.ConsumeAll(req) {
		t.Fatal("consume should fail on the dog shortage")
	}
	if l.Quantity("bun") != 5 || l.Quantity("dog") != 1 {
		t.Fatal("failed consume must leave every quantity untouched")
	}

	req2 := NewRequirements()
	req2.Add("bun", 2)
	req2.Add("dog", 1)
	if !l.ConsumeAll(req2) {
		t.Fatal("consume should succeed")
	}
	if l.Quantity("bun") != 3 || l.Quantity("dog") != 0 {
		t.Fatalf("after consume: bun=%d dog=%d", l.Quantity("bun"), l.Quantity("dog"))
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	l := NewLedger(map[string]int{"bun": 4}, nil)
	snap := l.Snapshot()
	snap["bun"] = 99
	if l.Quantity("bun") != 4 {
		t.Fatal("mutating the snapshot must not touch the ledger")
	}
}

func TestRequirementsAccumulateAndKeepOrder(t *testing.T) {
	req := NewRequirements()
	req.Add("bun", 1)
	req.Add("dog", 1)
	req.Add("bun", 2)

	if req.Len() != 2 {
		t.Fatalf("got %d distinct ids, want 2", req.Len())
	}
	if req.Count("bun") != 3 {
		t.Fatalf("bun count: got %d, want 3", req.Count("bun"))
	}
	ids := req.IDs()
	if ids[0] != "bun" || ids[1] != "dog" {
		t.Fatalf("ids out of order: %v", ids)
	}
}

func TestRequirementsForItemCountsDuplicates(t *testing.T) {
	req := RequirementsForItem([]string{"bun", "dog", "cheese", "cheese"})
	if req.Count("cheese") != 2 {
		t.Fatalf("duplicate topping should need 2 units, got %d", req.Count("cheese"))
	}
	if req.Len() != 3 {
		t.Fatalf("got %d distinct ids, want 3", req.Len())
	}
}
