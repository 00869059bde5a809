package graph

// Slot identifies which edge of a parent points at a given child:
// function or argument position of an App, or the body of a Lambda.
type Slot int

const (
	AppL Slot = iota
	AppR
	LamBody
)

func (s Slot) String() string {
	switch s {
	case AppL:
		return "AppL"
	case AppR:
		return "AppR"
	case LamBody:
		return "LamBody"
	default:
		return "Unknown"
	}
}

// Uplink is a back-reference recording one parent edge that points at
// the node whose list it lives on: "parent, via slot, points here".
// Uplinks are kept in an intrusive doubly linked list per child node
// so that removal by pointer identity is O(1) and addition is O(1);
// only unlink-by-value is O(degree).
type Uplink struct {
	Parent *Node
	Slot   Slot

	prev, next *Uplink
	owner      *Node // the child node whose list this Uplink lives on
}

// addUplink installs an uplink on child recording that parent, via
// slot, points at it. Returns the handle for O(1) removal.
func addUplink(child, parent *Node, slot Slot) *Uplink {
	u := &Uplink{Parent: parent, Slot: slot, owner: child}
	u.next = child.uplinks
	if child.uplinks != nil {
		child.uplinks.prev = u
	}
	child.uplinks = u
	return u
}

// removeUplink detaches u from its owner's list in O(1).
func removeUplink(u *Uplink) {
	if u.prev != nil {
		u.prev.next = u.next
	} else {
		u.owner.uplinks = u.next
	}
	if u.next != nil {
		u.next.prev = u.prev
	}
	u.prev, u.next, u.owner = nil, nil, nil
}

// unlinkUplink finds, by value, the uplink on child recording
// (parent, slot) and removes it. It asserts presence: calling it for
// an edge that was never installed is a precondition violation.
func unlinkUplink(child, parent *Node, slot Slot) {
	for u := child.uplinks; u != nil; u = u.next {
		if u.Parent == parent && u.Slot == slot {
			removeUplink(u)
			return
		}
	}
	panic("graph: unlink of absent uplink")
}

// eachUplink calls f once per uplink currently on node's list. The
// next uplink is read before f is called, so f may remove the uplink
// it was handed (BetaReduce and primReduce do, splicing a result over
// every parent of a redex); f must not remove any other uplink of
// node's list while iterating.
func eachUplink(node *Node, f func(*Uplink)) {
	for u := node.uplinks; u != nil; {
		next := u.next
		f(u)
		u = next
	}
}
