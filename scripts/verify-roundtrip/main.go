// Command verify-roundtrip writes a known variable to a v5 MAT-file and
// reads it back, checking that the decoded value matches what was written.
//
// Usage: go run scripts/verify-roundtrip/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/scigolib/matcore"
	"github.com/scigolib/matcore/types"
)

func main() {
	testData := []float64{1.0, 2.0, 3.0, 4.0, 5.0}
	testVar := types.NewNumeric("test_data", types.Double, []int{1, 5}, testData)

	testFile := filepath.Join(os.TempDir(), "test_roundtrip.mat")
	defer os.Remove(testFile) //nolint:errcheck // cleanup temporary test file

	fmt.Printf("writing %v to %s\n", testData, testFile)

	w, err := matcore.Create(testFile, matcore.Version5)
	if err != nil {
		fmt.Printf("FAILED: Create() error: %v\n", err)
		os.Exit(1)
	}
	if err := w.WriteVar(testVar); err != nil {
		fmt.Printf("FAILED: WriteVar() error: %v\n", err)
		os.Exit(1)
	}
	if err := w.Close(); err != nil {
		fmt.Printf("FAILED: Close() error: %v\n", err)
		os.Exit(1)
	}

	file, err := os.Open(testFile)
	if err != nil {
		fmt.Printf("FAILED: cannot open file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close() //nolint:errcheck // verification script, cleanup on exit

	sess, err := matcore.Open(file)
	if err != nil {
		fmt.Printf("FAILED: Open() error: %v\n", err)
		os.Exit(1)
	}

	readVar, err := sess.ReadVarFull("test_data")
	if err != nil {
		fmt.Printf("FAILED: ReadVarFull() error: %v\n", err)
		os.Exit(1)
	}

	if readVar.DataType != testVar.DataType {
		fmt.Printf("FAILED: data type mismatch: want %v got %v\n", testVar.DataType, readVar.DataType)
		os.Exit(1)
	}
	if len(readVar.Dims()) != len(testVar.Dims()) {
		fmt.Printf("FAILED: dimension count mismatch: want %v got %v\n", testVar.Dims(), readVar.Dims())
		os.Exit(1)
	}
	for i := range testVar.Dims() {
		if readVar.Dims()[i] != testVar.Dims()[i] {
			fmt.Printf("FAILED: dim[%d] mismatch: want %d got %d\n", i, testVar.Dims()[i], readVar.Dims()[i])
			os.Exit(1)
		}
	}

	readData, ok := readVar.Numeric.Real.([]float64)
	if !ok {
		fmt.Printf("FAILED: data type assertion failed: got %T\n", readVar.Numeric.Real)
		os.Exit(1)
	}
	for i := range testData {
		if readData[i] != testData[i] {
			fmt.Printf("FAILED: data[%d] mismatch: want %f got %f\n", i, testData[i], readData[i])
			os.Exit(1)
		}
	}

	fmt.Println("round-trip verified: data integrity preserved")
}
