package nav

import (
	"reflect"
	"testing"
)

func TestPushSequence(t *testing.T) {
	s := New()

	s, key := s.Push()
	if key != 0 {
		t.Errorf("first key = %d, want 0", key)
	}
	want := Stack{Back: []int{0}, Current: 0, History: []int{0}}
	if !equal(s, want) {
		t.Errorf("after first push: %+v, want %+v", s, want)
	}

	s, key = s.Push()
	if key != 1 {
		t.Errorf("second key = %d, want 1", key)
	}
	want = Stack{Back: []int{1, 0}, Current: 1, History: []int{1, 0}}
	if !equal(s, want) {
		t.Errorf("after second push: %+v, want %+v", s, want)
	}
}

func TestHistoryGrowsMonotonically(t *testing.T) {
	s := New()
	const n = 8

	for i := 0; i < n; i++ {
		var key int
		s, key = s.Push()
		if key != i {
			t.Fatalf("push %d minted key %d", i, key)
		}
		if len(s.History) != i+1 {
			t.Fatalf("after %d pushes history has %d entries", i+1, len(s.History))
		}
		if len(s.Next) != 0 {
			t.Fatalf("next not cleared after push %d: %v", i, s.Next)
		}
	}

	// Newest first: n-1 down to 0.
	for i, key := range s.History {
		if key != n-1-i {
			t.Errorf("history[%d] = %d, want %d", i, key, n-1-i)
		}
	}
}

func TestPushClearsForwardHistory(t *testing.T) {
	s := New()
	s, _ = s.Push()
	s, _ = s.Push()
	s, _ = s.Pop()
	if len(s.Next) == 0 {
		t.Fatal("pop should have populated next")
	}

	s, _ = s.Push()
	if len(s.Next) != 0 {
		t.Errorf("push left forward history: %v", s.Next)
	}
}

func TestPopMovesKeyToNext(t *testing.T) {
	s := New()
	s, _ = s.Push()
	s, _ = s.Push()

	s, popped := s.Pop()
	if popped != 1 {
		t.Errorf("popped = %d, want 1", popped)
	}
	want := Stack{Back: []int{0}, Current: 0, History: []int{1, 0}, Next: []int{1}}
	if !equal(s, want) {
		t.Errorf("after pop: %+v, want %+v", s, want)
	}
}

func TestPopEmptyClampsToOrigin(t *testing.T) {
	s, popped := New().Pop()
	if popped != 0 {
		t.Errorf("popped = %d, want 0", popped)
	}
	if s.Current != 0 {
		t.Errorf("current = %d, want 0", s.Current)
	}
	if len(s.Back) != 0 {
		t.Errorf("back = %v, want empty", s.Back)
	}
	if !reflect.DeepEqual(s.Next, []int{0}) {
		t.Errorf("next = %v, want [0]", s.Next)
	}
}

func TestPushPopRestoresCurrent(t *testing.T) {
	s := New()
	s, _ = s.Push()
	s, _ = s.Push()
	before := s.Current

	s, _ = s.Push()
	s, _ = s.Pop()

	if s.Current != before {
		t.Errorf("current after push+pop = %d, want %d", s.Current, before)
	}
}

func TestReviseChangesNothing(t *testing.T) {
	s := New()
	s, _ = s.Push()
	s, _ = s.Push()
	s, _ = s.Pop()

	revised := s.Revise()
	if !equal(revised, s) {
		t.Errorf("revise changed the stack: %+v -> %+v", s, revised)
	}
}

func TestPushDoesNotMutateReceiver(t *testing.T) {
	s := New()
	s, _ = s.Push()
	saved := Stack{
		Back:    append([]int(nil), s.Back...),
		Current: s.Current,
		History: append([]int(nil), s.History...),
		Next:    append([]int(nil), s.Next...),
	}

	s.Push()
	s.Pop()

	if !equal(s, saved) {
		t.Errorf("receiver mutated: %+v, want %+v", s, saved)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := New()
	s, _ = s.Push()
	s, _ = s.Push()
	snap := Snapshot{Route: "/guide", Stack: s}

	data, err := snap.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := UnmarshalSnapshot(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Route != snap.Route || !equal(got.Stack, snap.Stack) {
		t.Errorf("round trip: %+v, want %+v", got, snap)
	}
}

// equal compares stacks treating nil and empty slices the same.
func equal(a, b Stack) bool {
	return a.Current == b.Current &&
		keysEqual(a.Back, b.Back) &&
		keysEqual(a.History, b.History) &&
		keysEqual(a.Next, b.Next)
}

func keysEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
