package resolve

import "slices"

// MaxDepth bounds the length of a reference chain.
const MaxDepth = 64

// State tracks the references being resolved. The zero value is ready to
// use and a nil *State is treated as a fresh one by Compile and Deep.
type State struct {
	stack []string
}

func NewState() *State {
	return &State{}
}

func (st *State) enter(path string) error {
	if slices.Contains(st.stack, path) {
		return &CycleErr{Ref: path}
	}
	if len(st.stack) >= MaxDepth {
		return &CycleErr{Ref: path, Depth: true}
	}
	st.stack = append(st.stack, path)
	return nil
}

func (st *State) leave() {
	st.stack = st.stack[:len(st.stack)-1]
}

// Depth is the number of references currently being resolved.
func (st *State) Depth() int {
	return len(st.stack)
}
