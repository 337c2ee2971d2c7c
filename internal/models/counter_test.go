package models

import "testing"

func TestCounterCountsInInsertionOrder(t *testing.T) {
	c := NewCounter()
	c.Add("ketchup", 1)
	c.Add("mustard", 2)
	c.Add("ketchup", 1)

	if c.Len() != 2 {
		t.Fatalf("got %d names, want 2", c.Len())
	}
	if c.Get("ketchup") != 2 || c.Get("mustard") != 2 {
		t.Fatalf("counts wrong: ketchup=%d mustard=%d", c.Get("ketchup"), c.Get("mustard"))
	}
	if c.Get("never") != 0 {
		t.Fatal("unknown name should count zero")
	}

	counts := c.Counts()
	if counts[0].Name != "ketchup" || counts[1].Name != "mustard" {
		t.Fatalf("insertion order lost: %v", counts)
	}
}

func TestMostCommonBreaksTiesByFirstSight(t *testing.T) {
	c := NewCounter()
	c.Add("chili", 3)
	c.Add("classic", 5)
	c.Add("veggie", 3)

	got := c.MostCommon(0)
	want := []string{"classic", "chili", "veggie"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("position %d: got %s, want %s (full: %v)", i, got[i].Name, name, got)
		}
	}
}

func TestMostCommonLimitsN(t *testing.T) {
	c := NewCounter()
	c.Add("a", 1)
	c.Add("b", 9)
	c.Add("c", 4)

	got := c.MostCommon(2)
	if len(got) != 2 || got[0].Name != "b" || got[1].Name != "c" {
		t.Fatalf("top 2: got %v", got)
	}
	if got := c.MostCommon(10); len(got) != 3 {
		t.Fatalf("n beyond size should return everything, got %v", got)
	}
}

func TestClientsServedDerivation(t *testing.T) {
	rec := SalesRecord{TotalClients: 20, ClientsChangedOpinion: 4, ClientsCouldNotBuy: 6}
	if got := rec.ClientsServed(); got != 10 {
		t.Fatalf("served: got %d, want 10", got)
	}
}

func TestMenuItemIngredientIDs(t *testing.T) {
	side := "f1"
	m := MenuItem{
		BreadID:    "b1",
		SausageID:  "s1",
		ToppingIDs: []string{"t1", "t1"},
		SauceIDs:   []string{"k1"},
		SideID:     &side,
	}
	got := m.AllIngredientIDs()
	want := []string{"b1", "s1", "t1", "t1", "k1", "f1"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	empty := ""
	m.SideID = &empty
	if m.HasSide() {
		t.Fatal("empty side id should not count as a side")
	}
	if n := len(m.AllIngredientIDs()); n != 5 {
		t.Fatalf("got %d ids without side, want 5", n)
	}
}
