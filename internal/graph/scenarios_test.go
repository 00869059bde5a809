package graph

import "testing"

// testAtom is a minimal Primitive used only to give Prim nodes a
// distinguishable Repr in these tests without depending on
// internal/prim (which itself depends on this package).
type testAtom string

func (a testAtom) Apply(arg *Head) (Primitive, bool) { return nil, false }
func (a testAtom) Repr() string                      { return string(a) }

func lam(f func(v *Node) *Node) *Node {
	v := NewVar()
	return NewFun(v, f(v))
}

// TestIdentityApplication covers spec.md §8 scenario 1: (λx.x) y
// reduces to y, with the graph invariants holding before and after.
func TestIdentityApplication(t *testing.T) {
	y := NewPrim(testAtom("y"))
	term := NewApp(lam(func(x *Node) *Node { return x }), y)
	head := MakeHead(term)
	defer FreeHead(head)

	checkInvariants(t, head)
	steps, atHNF := ReduceToHNF(head, 10)
	if !atHNF {
		t.Fatalf("did not reach head normal form within bound, steps=%d", steps)
	}
	if got := show(head.Body(), nil); got != "y" {
		t.Errorf("show() = %q, want %q", got, "y")
	}
	checkInvariants(t, head)
}

// TestConstantFunction covers scenario 2: (λx.λy.x) a b reduces to a,
// discarding b without ever forcing it.
func TestConstantFunction(t *testing.T) {
	a := NewPrim(testAtom("a"))
	b := NewPrim(testAtom("b"))
	k := lam(func(x *Node) *Node {
		return lam(func(y *Node) *Node { return x })
	})
	term := NewApp(NewApp(k, a), b)
	head := MakeHead(term)
	defer FreeHead(head)

	before := LiveNodeCount()
	_, atHNF := ReduceToHNF(head, 10)
	if !atHNF {
		t.Fatalf("did not reach head normal form")
	}
	if got := show(head.Body(), nil); got != "a" {
		t.Errorf("show() = %q, want %q", got, "a")
	}
	checkInvariants(t, head)
	if after := LiveNodeCount(); after >= before {
		t.Errorf("expected discarded b (and the consumed redexes) to be released: before=%d after=%d", before, after)
	}
}

// TestSharedArgumentDuplication covers scenario 4: (λx. App(x,x))
// pair, where pair is itself an App. Reducing copies only the spine
// from x up to the binder; pair itself is not duplicated, so both
// children of the resulting App are the same shared node.
func TestSharedArgumentDuplication(t *testing.T) {
	a := NewPrim(testAtom("a"))
	b := NewPrim(testAtom("b"))
	pair := NewApp(a, b)
	dup := lam(func(x *Node) *Node { return NewApp(x, x) })
	term := NewApp(dup, pair)
	head := MakeHead(term)
	defer FreeHead(head)

	checkInvariants(t, head)
	_, atHNF := ReduceToHNF(head, 10)
	if !atHNF {
		t.Fatalf("did not reach head normal form")
	}
	result := head.Body()
	if result.Kind != KindApp {
		t.Fatalf("result is not an App: %s", result.Kind)
	}
	left, right := result.Left, result.Right
	if left.Kind != KindApp || right.Kind != KindApp {
		t.Fatalf("expected both occurrences to be pair, got %s / %s", left.Kind, right.Kind)
	}
	if left != right {
		t.Errorf("the two occurrences must be the same shared node, not copies")
	}
	// pair's own children (a and b) must likewise be the SAME nodes
	// under both occurrences: sharing is preserved below the spine.
	if left.Left != right.Left {
		t.Errorf("leaf a was duplicated, sharing was not preserved")
	}
	if left.Right != right.Right {
		t.Errorf("leaf b was duplicated, sharing was not preserved")
	}
	checkInvariants(t, head)
}

// TestUnusedArgument covers scenario 5: (λx. a) Ω must not force Ω.
// ReduceToHNF must terminate (Ω is discarded, not evaluated) and the
// step bound exists only as a general safety net.
func TestUnusedArgument(t *testing.T) {
	a := NewPrim(testAtom("a"))
	omegaComb := lam(func(y *Node) *Node { return NewApp(y, y) })
	omega := NewApp(omegaComb, omegaComb)
	k := lam(func(x *Node) *Node { return a })
	term := NewApp(k, omega)
	head := MakeHead(term)
	defer FreeHead(head)

	steps, atHNF := ReduceToHNF(head, 10)
	if !atHNF {
		t.Fatalf("unused-argument reduction must terminate quickly, got steps=%d atHNF=%v", steps, atHNF)
	}
	if got := show(head.Body(), nil); got != "a" {
		t.Errorf("show() = %q, want %q", got, "a")
	}
	checkInvariants(t, head)
}

// TestPrimitiveApply covers scenario 6: a Prim add1-like atom applied
// to a Prim argument reduces to a Prim holding the incremented value.
func TestPrimitiveApply(t *testing.T) {
	add1 := incrPrim{}
	term := NewApp(NewPrim(add1), NewPrim(countAtom(4)))
	head := MakeHead(term)
	defer FreeHead(head)

	_, atHNF := ReduceToHNF(head, 10)
	if !atHNF {
		t.Fatalf("did not reach head normal form")
	}
	p, ok := GetPrim(head)
	if !ok {
		t.Fatalf("result is not a Prim: %s", head.Body().Kind)
	}
	c, ok := p.(countAtom)
	if !ok || c != 5 {
		t.Errorf("result = %v, want countAtom(5)", p.Repr())
	}
	checkInvariants(t, head)
}

type countAtom int

func (c countAtom) Apply(arg *Head) (Primitive, bool) { return nil, false }
func (c countAtom) Repr() string                      { return "" }

type incrPrim struct{}

func (incrPrim) Apply(arg *Head) (Primitive, bool) {
	ReduceToHNF(arg, 10)
	p, ok := GetPrim(arg)
	if !ok {
		return nil, false
	}
	c, ok := p.(countAtom)
	if !ok {
		return nil, false
	}
	return countAtom(c + 1), true
}

func (incrPrim) Repr() string { return "incr" }
