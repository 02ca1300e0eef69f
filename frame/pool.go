package frame

import "sync"

// A pool of frame states, so the row buffers can be reused from one
// frame to the next. Pools are safe for concurrent use.
type Pool struct {
	pool sync.Pool
}

// Returns an empty state.
func (self *Pool) Get() *State {
	state, ok := self.pool.Get().(*State)
	if !ok { return NewState() }
	state.reset()
	return state
}

// Returns a state to the pool. Only retired states can be put back,
// anything else panics.
func (self *Pool) Put(state *State) {
	if !state.Retired() { panic("frame state returned to pool before retirement") }
	self.pool.Put(state)
}
