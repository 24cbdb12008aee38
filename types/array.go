package types

// Array is implemented by MatVar so callers can treat any node
// uniformly regardless of its payload shape, the same contract the
// teacher's NumericArray/CharArray types offered before the payload
// model grew a recursive Cell/Struct tree.
type Array interface {
	Dims() []int           // Array dimensions
	Size() int             // Total number of elements
	ElementType() DataKind // On-disk type of elements
}

// Prod returns the product of dims, the element count of an array with
// that shape. An empty dims slice (rank 0) has zero elements.
func Prod(dims []int) int {
	if len(dims) == 0 {
		return 0
	}
	n := 1
	for _, d := range dims {
		n *= d
	}
	return n
}
