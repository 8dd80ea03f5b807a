package promise

// State is the settlement state of a [Promise] or a [Result].
//
// The transition is one-way and exactly-once: a Promise starts Pending and
// moves to either Fulfilled or Rejected, after which its state, value and
// error are immutable.
type State int8

const (
	Pending State = iota
	Fulfilled
	Rejected
)

// Settled reports whether s is Fulfilled or Rejected.
func (s State) Settled() bool {
	return s != Pending
}

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		return "invalid"
	}
}
