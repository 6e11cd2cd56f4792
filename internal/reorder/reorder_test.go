package reorder_test

import (
	"testing"

	"github.com/simeonrst/apphub/internal/reorder"
)

func equal(a, b []string) bool {
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

func TestSession_HoverMovesBeforeTarget(t *testing.T) {
	s := reorder.Start("c", []string{"a", "b", "c", "d"})

	s.Hover("a", true)
	if got := s.Order(); !equal(got, []string{"c", "a", "b", "d"}) {
		t.Errorf("expected [c a b d], got %v", got)
	}
}

func TestSession_HoverMovesAfterTarget(t *testing.T) {
	s := reorder.Start("a", []string{"a", "b", "c", "d"})

	s.Hover("c", false)
	if got := s.Order(); !equal(got, []string{"b", "c", "a", "d"}) {
		t.Errorf("expected [b c a d], got %v", got)
	}
}

func TestSession_HoverIsProvisionalUntilDrop(t *testing.T) {
	s := reorder.Start("a", []string{"a", "b", "c"})

	s.Hover("c", false)
	s.Hover("b", true)
	s.Hover("c", false)

	got := s.Drop()
	if !equal(got, []string{"b", "c", "a"}) {
		t.Errorf("expected final order [b c a], got %v", got)
	}
	if s.Active() {
		t.Error("session must be inactive after drop")
	}
}

func TestSession_HoverOverSelfIsIgnored(t *testing.T) {
	s := reorder.Start("b", []string{"a", "b", "c"})

	s.Hover("b", true)
	if got := s.Order(); !equal(got, []string{"a", "b", "c"}) {
		t.Errorf("expected unchanged order, got %v", got)
	}
}

func TestSession_HoverUnknownTargetIsIgnored(t *testing.T) {
	s := reorder.Start("b", []string{"a", "b", "c"})

	s.Hover("zzz", true)
	if got := s.Order(); !equal(got, []string{"a", "b", "c"}) {
		t.Errorf("expected unchanged order, got %v", got)
	}
}

func TestSession_CancelDiscardsMovement(t *testing.T) {
	s := reorder.Start("a", []string{"a", "b", "c"})
	s.Hover("c", false)
	s.Cancel()

	if s.Active() {
		t.Error("session must be inactive after cancel")
	}
}

func TestMergeVisible_AllVisible(t *testing.T) {
	full := []string{"a", "b", "c"}
	got := reorder.MergeVisible(full, full, []string{"c", "a", "b"})
	if !equal(got, []string{"c", "a", "b"}) {
		t.Errorf("expected [c a b], got %v", got)
	}
}

func TestMergeVisible_HiddenAppsKeepTheirSlots(t *testing.T) {
	// b and d are hidden by the active filter; a, c, e were visible and the
	// gesture reversed them. The hidden apps must stay exactly where they were.
	full := []string{"a", "b", "c", "d", "e"}
	before := []string{"a", "c", "e"}
	after := []string{"e", "c", "a"}

	got := reorder.MergeVisible(full, before, after)
	want := []string{"e", "b", "c", "d", "a"}
	if !equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMergeVisible_NoMovement(t *testing.T) {
	full := []string{"a", "b", "c", "d"}
	before := []string{"b", "d"}
	got := reorder.MergeVisible(full, before, before)
	if !equal(got, full) {
		t.Errorf("expected unchanged %v, got %v", full, got)
	}
}

func TestMergeVisible_SingleVisibleApp(t *testing.T) {
	full := []string{"a", "b", "c"}
	got := reorder.MergeVisible(full, []string{"b"}, []string{"b"})
	if !equal(got, full) {
		t.Errorf("expected %v, got %v", full, got)
	}
}

func TestMergeVisible_ResultIsAlwaysPermutation(t *testing.T) {
	full := []string{"a", "b", "c", "d", "e"}
	before := []string{"a", "c", "e"}

	tests := []struct {
		name  string
		after []string
	}{
		{"well formed", []string{"c", "e", "a"}},
		{"gesture dropped an id", []string{"c", "a"}},
		{"gesture duplicated an id", []string{"c", "c", "e", "a"}},
		{"gesture invented an id", []string{"c", "x", "e", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reorder.MergeVisible(full, before, tt.after)
			if len(got) != len(full) {
				t.Fatalf("expected %d ids, got %v", len(full), got)
			}
			seen := map[string]bool{}
			for _, id := range got {
				if seen[id] {
					t.Fatalf("duplicate id %q in %v", id, got)
				}
				seen[id] = true
			}
			for _, id := range full {
				if !seen[id] {
					t.Fatalf("missing id %q in %v", id, got)
				}
			}
		})
	}
}
