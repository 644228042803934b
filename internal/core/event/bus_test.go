package event

import "testing"

func TestEventsDeliveredOnNextDispatch(t *testing.T) {
	b := NewBus()
	var got []TargetTouched
	Subscribe(b, func(e TargetTouched) { got = append(got, e) })

	Emit(b, TargetTouched{Gained: 1, Score: 1})
	b.DispatchAll()
	if len(got) != 0 {
		t.Fatal("event delivered before buffer swap")
	}
	if b.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", b.Pending())
	}

	b.SwapBuffers()
	b.DispatchAll()
	if len(got) != 1 || got[0].Score != 1 {
		t.Fatalf("got %+v", got)
	}

	b.SwapBuffers()
	b.DispatchAll()
	if len(got) != 1 {
		t.Fatalf("event delivered twice: %+v", got)
	}
}

func TestHandlersAreTyped(t *testing.T) {
	b := NewBus()
	shots, resets := 0, 0
	Subscribe(b, func(ShotFired) { shots++ })
	Subscribe(b, func(WorldReset) { resets++ })

	Emit(b, ShotFired{})
	Emit(b, ShotFired{})
	Emit(b, WorldReset{})
	b.SwapBuffers()
	b.DispatchAll()

	if shots != 2 || resets != 1 {
		t.Fatalf("shots=%d resets=%d", shots, resets)
	}
}
