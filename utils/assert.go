package utils

// Assert panics when condition is false. It guards caller preconditions and
// internal invariants that have no recovery path, so it is never meant to be
// recovered from.
//
// A single message replaces the generic panic value.
func Assert(condition bool, message ...string) {
	if !condition {
		if len(message) == 1 {
			panic(message[0])
		}
		panic("failed assertion")
	}
}
