package events

import "testing"

func collectTypes(d *Dispatcher[int], types ...EventType) *[]Event[int] {
	got := make([]Event[int], 0)
	for _, et := range types {
		et := et
		d.Subscribe(et, func(e Event[int]) {
			got = append(got, e)
		})
	}
	return &got
}

func TestDispatcher_ContactEnterStayExit(t *testing.T) {
	d := NewDispatcher[int]()
	got := collectTypes(d, ContactEnter, ContactStay, ContactExit)

	// Tick 1: pair (1, 2) first seen -> Enter.
	d.RecordContact(1, 2)
	d.Flush()

	// Tick 2: still touching -> Stay.
	d.RecordContact(1, 2)
	d.Flush()

	// Tick 3: separated -> Exit.
	d.Flush()

	want := []EventType{ContactEnter, ContactStay, ContactExit}
	if len(*got) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(*got), *got)
	}
	for i, e := range *got {
		if e.Type() != want[i] {
			t.Errorf("event %d: got %v, want %v", i, e.Type(), want[i])
		}
	}
}

func TestDispatcher_StayPersistsAcrossManyTicks(t *testing.T) {
	d := NewDispatcher[int]()
	var stays int
	d.Subscribe(ContactStay, func(Event[int]) { stays++ })
	d.Subscribe(ContactEnter, func(Event[int]) {})

	for i := 0; i < 5; i++ {
		d.RecordContact(7, 9)
		d.Flush()
	}

	if stays != 4 {
		t.Errorf("expected 4 Stay events after 5 ticks of sustained contact, got %d", stays)
	}
}

func TestDispatcher_NoExitWithoutPriorEnter(t *testing.T) {
	d := NewDispatcher[int]()
	var exits int
	d.Subscribe(ContactExit, func(Event[int]) { exits++ })

	d.Flush()

	if exits != 0 {
		t.Errorf("expected no Exit event when no contact was ever recorded, got %d", exits)
	}
}

func TestDispatcher_SleepAndWakeTransitions(t *testing.T) {
	d := NewDispatcher[int]()
	var sleeps, wakes int
	d.Subscribe(OnSleep, func(Event[int]) { sleeps++ })
	d.Subscribe(OnWake, func(Event[int]) { wakes++ })

	// First observation just seeds the tracked state, no transition.
	d.RecordSleepState(1, false)
	d.Flush()
	if sleeps != 0 || wakes != 0 {
		t.Fatalf("seeding the initial state must not fire a transition")
	}

	d.RecordSleepState(1, true)
	d.Flush()
	if sleeps != 1 {
		t.Errorf("expected one Sleep event, got %d", sleeps)
	}

	d.RecordSleepState(1, true)
	d.Flush()
	if sleeps != 1 {
		t.Errorf("repeating the same sleeping state must not refire Sleep, got %d", sleeps)
	}

	d.RecordSleepState(1, false)
	d.Flush()
	if wakes != 1 {
		t.Errorf("expected one Wake event, got %d", wakes)
	}
}

// TestDispatcher_OrderFlipStillStays reproduces Sweep-and-Prune
// reporting a pair in flipped argument order as two bodies cross each
// other: (1,2) one tick, (2,1) the next. The pair's identity must
// survive the flip, so this must classify as Stay, not Exit+Enter.
func TestDispatcher_OrderFlipStillStays(t *testing.T) {
	d := NewDispatcher[int]()
	got := collectTypes(d, ContactEnter, ContactStay, ContactExit)

	d.RecordContact(1, 2)
	d.Flush()

	d.RecordContact(2, 1)
	d.Flush()

	want := []EventType{ContactEnter, ContactStay}
	if len(*got) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(*got), *got)
	}
	for i, e := range *got {
		if e.Type() != want[i] {
			t.Errorf("event %d: got %v, want %v", i, e.Type(), want[i])
		}
	}
}

func TestDispatcher_UnsubscribedEventTypeIsSilent(t *testing.T) {
	d := NewDispatcher[int]()
	// No listeners registered at all; Flush must not panic.
	d.RecordContact(1, 2)
	d.Flush()
	d.Flush()
}
