package frame

import "github.com/tinne26/cellatlas/atlas"

type phase uint8
const (
	phaseEmpty phase = iota
	phasePopulated
	phaseSubmitted
	phaseRetired
)

// Accumulates one frame's worth of draw inputs. See the package
// documentation for the lifecycle.
//
// States are not safe for concurrent use. They are meant to be filled
// by a single producer and then handed over to the renderer, so any
// synchronization across that handoff is up to the caller.
type State struct {
	cells      []Cell // all rows, back to back
	rowEnds    []int  // end offset of each row in cells
	underline  UnderlineDescriptor
	background atlas.Texture // borrowed, never released
	phase      phase
}

// Creates a new, empty state. Most code should get states from a
// [Pool] or a renderer instead.
func NewState() *State { return &State{} }

func (self *State) mustBeWritable() {
	switch self.phase {
	case phaseSubmitted: panic("frame state mutated after submission")
	case phaseRetired:   panic("frame state used after retirement")
	}
	self.phase = phasePopulated
}

func (self *State) mustBeReadable() {
	if self.phase == phaseRetired { panic("frame state used after retirement") }
}

// Appends a row below the previous ones. Rows are drawn in the
// order they are appended. The cells are copied, so the row can be
// reused by the caller.
func (self *State) AppendRow(row Row) {
	self.mustBeWritable()
	self.cells = append(self.cells, row...)
	self.rowEnds = append(self.rowEnds, len(self.cells))
}

// Sets the underline parameters for the frame. Last write wins.
func (self *State) SetUnderlineDescriptor(descriptor UnderlineDescriptor) {
	self.mustBeWritable()
	self.underline = descriptor
}

// Sets the texture to draw behind the cells. The state only keeps a
// reference; the caller retains ownership and must keep the texture
// alive until the frame has been drawn. Nil means no background.
func (self *State) SetBackgroundTexture(texture atlas.Texture) {
	self.mustBeWritable()
	self.background = texture
}

// Returns the number of appended rows.
func (self *State) NumRows() int {
	self.mustBeReadable()
	return len(self.rowEnds)
}

// Returns the cells of the given row. The returned slice aliases
// internal memory and must not be modified.
func (self *State) Row(index int) Row {
	self.mustBeReadable()
	start := 0
	if index > 0 { start = self.rowEnds[index - 1] }
	end := self.rowEnds[index]
	return Row(self.cells[start : end : end])
}

// Returns all rows, top to bottom. Like [State.Row](), the rows
// alias internal memory.
func (self *State) Rows() []Row {
	self.mustBeReadable()
	rows := make([]Row, len(self.rowEnds))
	for i := range rows { rows[i] = self.Row(i) }
	return rows
}

// Returns the length of the longest row.
func (self *State) Columns() int {
	self.mustBeReadable()
	columns, start := 0, 0
	for _, end := range self.rowEnds {
		if end - start > columns { columns = end - start }
		start = end
	}
	return columns
}

// Returns the underline descriptor. Zero value if never set.
func (self *State) UnderlineDescriptor() UnderlineDescriptor {
	self.mustBeReadable()
	return self.underline
}

// Returns the background texture reference, which may be nil.
func (self *State) BackgroundTexture() atlas.Texture {
	self.mustBeReadable()
	return self.background
}

// Marks the start of the draw submission. From this point on the
// state is read-only. Submitting twice panics.
func (self *State) Submit() {
	switch self.phase {
	case phaseSubmitted: panic("frame state submitted twice")
	case phaseRetired:   panic("frame state used after retirement")
	}
	self.phase = phaseSubmitted
}

// Returns whether [State.Submit]() has been called.
func (self *State) Submitted() bool {
	return self.phase >= phaseSubmitted
}

// Ends the lifecycle of the state. Any further method call other than
// [State.Retired]() will panic, unless the state is reset by a [Pool].
func (self *State) Retire() {
	self.mustBeReadable()
	self.phase = phaseRetired
	self.background = nil
}

// Returns whether the state has been retired.
func (self *State) Retired() bool {
	return self.phase == phaseRetired
}

// clears everything but keeps the buffers
func (self *State) reset() {
	self.cells = self.cells[ : 0]
	self.rowEnds = self.rowEnds[ : 0]
	self.underline = UnderlineDescriptor{}
	self.background = nil
	self.phase = phaseEmpty
}
