package rrb

import "testing"

func TestTransientRoundtripMatchesPersistent(t *testing.T) {
	defer setupTest(t)()

	s1 := buildRange(t, 0, 666)

	tr := s1.AsTransient()
	if err := tr.PushBackMut(666); err != nil {
		t.Fatalf("push_back_mut: %v", err)
	}
	if err := tr.PushBackMut(667); err != nil {
		t.Fatalf("push_back_mut: %v", err)
	}
	got := tr.AsPersistent()

	want, err := s1.PushBack(666)
	if err != nil {
		t.Fatalf("push_back: %v", err)
	}
	want, err = want.PushBack(667)
	if err != nil {
		t.Fatalf("push_back: %v", err)
	}

	if got.Len() != want.Len() {
		t.Fatalf("transient roundtrip length = %d, want %d", got.Len(), want.Len())
	}
	for i := 0; i < want.Len(); i++ {
		gv, _ := got.Get(i)
		wv, _ := want.Get(i)
		if gv != wv {
			t.Fatalf("transient roundtrip mismatch at %d: %d vs %d", i, gv, wv)
		}
	}
}

func TestTransientDoesNotMutateSourcePersistent(t *testing.T) {
	defer setupTest(t)()

	s1 := buildRange(t, 0, 50)
	tr := s1.AsTransient()
	for i := 50; i < 200; i++ {
		if err := tr.PushBackMut(i); err != nil {
			t.Fatalf("push_back_mut(%d): %v", i, err)
		}
	}
	if s1.Len() != 50 {
		t.Fatalf("source sequence length changed to %d, want 50", s1.Len())
	}
	for i := 0; i < 50; i++ {
		v, _ := s1.Get(i)
		if v != i {
			t.Fatalf("source sequence mutated at %d: got %d, want %d", i, v, i)
		}
	}
}

func TestTransientUpdateAssocTakeDrop(t *testing.T) {
	defer setupTest(t)()

	tr := buildRange(t, 0, 200).AsTransient()
	if err := tr.AssocMut(10, 1000); err != nil {
		t.Fatalf("assoc_mut: %v", err)
	}
	v, err := tr.Get(10)
	if err != nil || v != 1000 {
		t.Fatalf("get(10) after assoc_mut = %d, %v; want 1000, nil", v, err)
	}

	if err := tr.TakeMut(50); err != nil {
		t.Fatalf("take_mut: %v", err)
	}
	if tr.Len() != 50 {
		t.Fatalf("len after take_mut(50) = %d, want 50", tr.Len())
	}

	if err := tr.DropMut(10); err != nil {
		t.Fatalf("drop_mut: %v", err)
	}
	if tr.Len() != 40 {
		t.Fatalf("len after drop_mut(10) = %d, want 40", tr.Len())
	}
	first, _ := tr.Get(0)
	if first != 1000 {
		t.Fatalf("get(0) after drop_mut(10) = %d, want 1000 (index 10 was assoc'ed)", first)
	}
}

func TestTransientConcatMut(t *testing.T) {
	defer setupTest(t)()

	tr := buildRange(t, 0, 100).AsTransient()
	other := buildRange(t, 100, 250)
	if err := tr.ConcatMut(other); err != nil {
		t.Fatalf("concat_mut: %v", err)
	}
	if tr.Len() != 250 {
		t.Fatalf("len after concat_mut = %d, want 250", tr.Len())
	}
	for i := 0; i < 250; i++ {
		v, err := tr.Get(i)
		if err != nil {
			t.Fatalf("get(%d): %v", i, err)
		}
		if v != i {
			t.Fatalf("get(%d) = %d, want %d", i, v, i)
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	defer setupTest(t)()

	_, err := New[int](WithBranching(0, 2))
	if err == nil {
		t.Fatalf("expected ErrInvalidConfig for zero inner branching bits")
	}
}
