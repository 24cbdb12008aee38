package types

import "fmt"

// HostValue is the tagged union of the host-side value model: the
// shape an embedder actually wants to hold, as opposed to MatVar's on-disk
// variant tree. The bridge package is the only code that converts between
// the two; everything else in this module works purely in terms of MatVar.
//
// Concrete types: Null, Real64, Int32Vec, ComplexVec, BoolVec, Str,
// StrArray, List, SparseValue. Each except Str carries its own shape (Dims,
// or Rows/Cols for SparseValue), since a host value's shape is independent
// of how many elements it holds (a 0x0 Real64 and a 1x1 Real64 are both
// legal and distinct). Str has no shape field; its Shape is nil.
type HostValue interface {
	isHostValue()
	Shape() []int
}

// Null is the host value for an empty array, a missing struct field, or a
// ragged cell/list gap — anywhere MatVar would use NewEmptyDouble.
type Null struct {
	Dims []int
}

func (Null) isHostValue()    {}
func (n Null) Shape() []int  { return n.Dims }

// Real64 is a real (non-complex) floating-point array, the bridge's default
// target for any real numeric MatVar regardless of on-disk DataType.
type Real64 struct {
	Dims []int
	Data []float64
}

func (Real64) isHostValue()   {}
func (r Real64) Shape() []int { return r.Dims }

// Int32Vec is an integer array that round-trips exactly through int32.
// FromHostValue writes it as an Int32 MatVar; ToHostValue never produces
// it, since every real numeric class, Int32 included, comes back as Real64.
type Int32Vec struct {
	Dims []int
	Data []int32
}

func (Int32Vec) isHostValue()   {}
func (v Int32Vec) Shape() []int { return v.Dims }

// ComplexVec is a split real/imaginary pair, mirroring MatVar's complex
// NumericPayload.
type ComplexVec struct {
	Dims []int
	Real []float64
	Imag []float64
}

func (ComplexVec) isHostValue()   {}
func (c ComplexVec) Shape() []int { return c.Dims }

// BoolVec is a logical array (a UINT8 MatVar with IsLogical set). A logical
// sparse MatVar bridges to SparseValue with Logical set instead.
type BoolVec struct {
	Dims []int
	Data []bool
}

func (BoolVec) isHostValue()   {}
func (b BoolVec) Shape() []int { return b.Dims }

// Str is a single character array collapsed to a Go string, the bridge's
// target for a single-row (1xN) or non-rank-2 Char MatVar.
type Str struct {
	Value string
}

func (Str) isHostValue()     {}
func (Str) Shape() []int     { return nil }

// StrArray is a char MatVar whose rows are distinct strings (MxN Char,
// M>1), one entry per row — char matrices bridge to a
// list of rows when it is rank-2 with more than one row.
type StrArray struct {
	Dims   []int
	Values []string
}

func (StrArray) isHostValue()   {}
func (s StrArray) Shape() []int { return s.Dims }

// List is the bridge's target for both Cell and Struct MatVars. Names is
// nil for a bridged Cell (an unnamed ordered list); non-nil and the same
// length as Values for a bridged Struct (one name per field, scalar
// struct) — see ToHostValue/FromHostValue for the struct-array case, which
// bridges to a List of Lists instead.
type List struct {
	Dims   []int
	Names  []string
	Values []HostValue
}

func (List) isHostValue()   {}
func (l List) Shape() []int { return l.Dims }

// SparseValue is the host-side CSC view, the bridge's target for a Sparse
// MatVar.
type SparseValue struct {
	Rows, Cols int
	IR, JC     []int32
	Data       []float64
	Imag       []float64
	Logical    bool
}

func (SparseValue) isHostValue() {}
func (s SparseValue) Shape() []int {
	return []int{s.Rows, s.Cols}
}

func (n Null) String() string        { return fmt.Sprintf("Null%v", n.Dims) }
func (r Real64) String() string      { return fmt.Sprintf("Real64%v", r.Dims) }
func (v Int32Vec) String() string    { return fmt.Sprintf("Int32Vec%v", v.Dims) }
func (c ComplexVec) String() string  { return fmt.Sprintf("ComplexVec%v", c.Dims) }
func (b BoolVec) String() string     { return fmt.Sprintf("BoolVec%v", b.Dims) }
func (s Str) String() string         { return fmt.Sprintf("Str(%q)", s.Value) }
func (s StrArray) String() string    { return fmt.Sprintf("StrArray%v", s.Dims) }
func (l List) String() string        { return fmt.Sprintf("List%v(named=%v)", l.Dims, l.Names != nil) }
func (s SparseValue) String() string { return fmt.Sprintf("SparseValue(%dx%d)", s.Rows, s.Cols) }
