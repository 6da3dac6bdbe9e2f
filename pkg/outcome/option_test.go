package outcome

import "testing"

func TestSome_UnwrapReturnsValue(t *testing.T) {
	t.Parallel()
	o := Some("v")
	if !o.IsSome() || o.IsNone() {
		t.Fatalf("expected some variant, got: some=%v, none=%v", o.IsSome(), o.IsNone())
	}
	if got := o.Unwrap(); got != "v" {
		t.Fatalf("expected v, got %v", got)
	}
}

func TestNone_IsEmptyVariant(t *testing.T) {
	t.Parallel()
	o := None[string]()
	if o.IsSome() || !o.IsNone() {
		t.Fatalf("expected none variant, got: some=%v, none=%v", o.IsSome(), o.IsNone())
	}
}

func TestSomeNil_IsDistinctFromNone(t *testing.T) {
	t.Parallel()
	var p *int
	present := Some(p) // present-but-nil
	absent := None[*int]()

	if !present.IsSome() {
		t.Fatalf("Some(nil) must be present")
	}
	if present.Unwrap() != nil {
		t.Fatalf("Some(nil) must carry the nil back out")
	}
	if !absent.IsNone() {
		t.Fatalf("None must be absent")
	}
}

func TestSomeNotNil_CollapsesAbsenceOnly(t *testing.T) {
	t.Parallel()
	var p *int
	if o := SomeNotNil(p); !o.IsNone() {
		t.Fatalf("expected None for the absence marker")
	}
	if o := SomeNotNil(0); !o.IsSome() || o.Unwrap() != 0 {
		t.Fatalf("expected Some(0), zero is a value")
	}
}

func TestOptionUnwrap_PanicsOnNone(t *testing.T) {
	t.Parallel()
	o := None[int]()
	mustPanicWith(t, ErrNotSome, func() { o.Unwrap() })
}

func TestOptionUnwrapOr_DefaultOnlyOnNone(t *testing.T) {
	t.Parallel()
	if got := None[int]().UnwrapOr(9); got != 9 {
		t.Fatalf("expected default 9, got %v", got)
	}
	if got := Some(2).UnwrapOr(9); got != 2 {
		t.Fatalf("expected payload 2, got %v", got)
	}
}

func TestOptionZeroValue_IsMalformedShape(t *testing.T) {
	t.Parallel()
	var o Option[int]

	if o.IsValid() {
		t.Fatalf("zero value must not be a valid variant")
	}
	mustPanicWith(t, ErrInvalidShape, func() { o.IsSome() })
	mustPanicWith(t, ErrInvalidShape, func() { o.Unwrap() })
	mustPanicWith(t, ErrInvalidShape, func() { MapOption(o, func(v int) int { return v }) })
	mustPanicWith(t, ErrInvalidShape, func() { BindOption(o, func(v int) Option[int] { return Some(v) }) })
}

func TestIsNil_Kinds(t *testing.T) {
	t.Parallel()
	var p *int
	var m map[string]int
	var s []int
	var f func()
	var ch chan int

	for i, v := range []interface{}{nil, p, m, s, f, ch} {
		if !IsNil(v) {
			t.Fatalf("case %d: expected nil detection", i)
		}
	}
	for i, v := range []interface{}{0, "", false, struct{}{}, []int{}, map[string]int{}} {
		if IsNil(v) {
			t.Fatalf("case %d: value wrongly treated as absence marker", i)
		}
	}
}
