package ecs

import "testing"

type pos struct{ X, Y float64 }
type tag struct{}

func TestPoolReusesSlotWithNewGeneration(t *testing.T) {
	p := NewEntityPool()
	a := p.Create()
	if a.IsZero() {
		t.Fatal("first entity must not be the zero handle")
	}
	if !p.Destroy(a) {
		t.Fatal("destroy of live entity reported false")
	}
	if p.Destroy(a) {
		t.Fatal("second destroy of the same handle reported true")
	}
	b := p.Create()
	if b.Index() != a.Index() {
		t.Fatalf("slot not reused: a=%d b=%d", a.Index(), b.Index())
	}
	if b.Generation() == a.Generation() {
		t.Fatal("generation not bumped on reuse")
	}
	if p.Alive(a) {
		t.Fatal("stale handle still alive")
	}
	if !p.Alive(b) {
		t.Fatal("fresh handle not alive")
	}
	if p.Len() != 1 {
		t.Fatalf("Len = %d, want 1", p.Len())
	}
}

func TestZeroHandleNeverAlive(t *testing.T) {
	p := NewEntityPool()
	p.Create()
	if p.Alive(0) {
		t.Fatal("zero handle reported alive")
	}
	if p.Destroy(0) {
		t.Fatal("zero handle destroyed")
	}
}

func TestWorldDestroyClearsRegisteredStores(t *testing.T) {
	w := NewWorld()
	positions := NewStore[pos]()
	tags := NewStore[tag]()
	w.Registry().Register(positions)
	w.Registry().Register(tags)

	id := w.CreateEntity()
	positions.Set(id, &pos{X: 1})
	tags.Set(id, &tag{})

	if !w.Destroy(id) {
		t.Fatal("destroy reported false")
	}
	if positions.Has(id) || tags.Has(id) {
		t.Fatal("components survived destroy")
	}
	if w.Destroy(id) {
		t.Fatal("double destroy reported true")
	}
	if w.Len() != 0 {
		t.Fatalf("Len = %d, want 0", w.Len())
	}
}

func TestStoreEachToleratesRemovalDuringWalk(t *testing.T) {
	s := NewStore[pos]()
	for i := 1; i <= 5; i++ {
		s.Set(EntityID(i), &pos{X: float64(i)})
	}
	visited := 0
	s.Each(func(id EntityID, _ *pos) {
		visited++
		// remove the current entry and one not yet visited
		s.Remove(id)
		if id == 1 {
			s.Remove(5)
		}
	})
	if visited != 4 {
		t.Fatalf("visited %d entries, want 4", visited)
	}
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}
}

func TestStoreOrderIsInsertionOrder(t *testing.T) {
	s := NewStore[pos]()
	for _, id := range []EntityID{7, 3, 9} {
		s.Set(id, &pos{})
	}
	got := s.IDs()
	want := []EntityID{7, 3, 9}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("IDs() = %v, want %v", got, want)
		}
	}
	first, _, ok := s.First()
	if !ok || first != 7 {
		t.Fatalf("First() = %d,%v want 7,true", first, ok)
	}
}

func TestEach2OnlyVisitsIntersection(t *testing.T) {
	a := NewStore[pos]()
	b := NewStore[tag]()
	a.Set(1, &pos{})
	a.Set(2, &pos{})
	b.Set(2, &tag{})
	b.Set(3, &tag{})

	var seen []EntityID
	Each2(a, b, func(id EntityID, _ *pos, _ *tag) {
		seen = append(seen, id)
	})
	if len(seen) != 1 || seen[0] != 2 {
		t.Fatalf("Each2 visited %v, want [2]", seen)
	}
}
