package chain

import (
	"context"
	"strconv"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome"
)

func TestOptionFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := OptionFromValue(ctx, 7).Option()
	if !out.IsSome() || out.Unwrap() != 7 {
		t.Fatalf("expected some with 7, got: some=%v", out.IsSome())
	}
}

func TestThenOption_ShortCircuitOnNone(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	called := false

	out := ThenOption(StartOption(ctx, outcome.None[int]()), func(_ context.Context, v int) outcome.Option[int] {
		called = true
		return outcome.Some(v + 1)
	}).Option()

	if !out.IsNone() {
		t.Fatalf("expected none, got: some=%v", out.IsSome())
	}
	if called {
		t.Fatalf("onSome should not be called when initial option is none")
	}
}

func TestThenOption_StepDecidesPresence(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	half := func(_ context.Context, v int) outcome.Option[int] {
		if v%2 != 0 {
			return outcome.None[int]()
		}
		return outcome.Some(v / 2)
	}

	if out := ThenOption(OptionFromValue(ctx, 8), half).Option(); !out.IsSome() || out.Unwrap() != 4 {
		t.Fatalf("expected some with 4, got: some=%v", out.IsSome())
	}
	if out := ThenOption(OptionFromValue(ctx, 7), half).Option(); !out.IsNone() {
		t.Fatalf("expected the step's none verbatim")
	}
}

func TestMapOption_TypeChange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := MapOption(OptionFromValue(ctx, 3), func(_ context.Context, v int) string {
		return strconv.Itoa(v)
	}).Option()
	if !out.IsSome() || out.Unwrap() != "3" {
		t.Fatalf("expected some with \"3\", got: some=%v", out.IsSome())
	}
}

func TestOptEnsure_SomeOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	seen := 0

	OptionFromValue(ctx, 1).Ensure(func(_ context.Context, v int) { seen++ })
	StartOption(ctx, outcome.None[int]()).Ensure(func(_ context.Context, v int) { seen++ })

	if seen != 1 {
		t.Fatalf("expected one side effect, got %d", seen)
	}
}

func TestOptOrElse_NonePathOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := StartOption(ctx, outcome.None[int]()).
		OrElse(func(_ context.Context) outcome.Option[int] {
			return outcome.Some(42)
		}).Option()
	if !out.IsSome() || out.Unwrap() != 42 {
		t.Fatalf("expected alternative 42, got: some=%v", out.IsSome())
	}

	called := false
	out = OptionFromValue(ctx, 1).
		OrElse(func(_ context.Context) outcome.Option[int] {
			called = true
			return outcome.Some(0)
		}).Option()
	if !out.IsSome() || out.Unwrap() != 1 || called {
		t.Fatalf("expected some untouched, called=%v", called)
	}
}

func TestFinallyOption_CollapsesChain(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := FinallyOption(OptionFromValue(ctx, 10),
		func(_ context.Context, v int) string { return strconv.Itoa(v) },
		func(_ context.Context) string { return "none" })
	if got != "10" {
		t.Fatalf("expected \"10\", got %v", got)
	}

	got = FinallyOption(StartOption(ctx, outcome.None[int]()),
		func(_ context.Context, v int) string { return strconv.Itoa(v) },
		func(_ context.Context) string { return "none" })
	if got != "none" {
		t.Fatalf("expected \"none\", got %v", got)
	}
}
