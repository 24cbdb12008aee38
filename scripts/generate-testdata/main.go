// Command generate-testdata creates minimal MAT-files for testdata/,
// using the package's own writer (dogfooding).
//
// Usage: go run scripts/generate-testdata/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/scigolib/matcore"
	"github.com/scigolib/matcore/types"
)

func main() {
	testdataDir := filepath.Join("testdata", "generated")
	if err := os.MkdirAll(testdataDir, 0o755); err != nil {
		log.Fatalf("failed to create testdata directory: %v", err)
	}

	tests := []struct {
		filename string
		version  matcore.Version
		variable *types.MatVar
	}{
		{
			filename: "simple_double.mat",
			version:  matcore.Version5,
			variable: types.NewNumeric("data", types.Double, []int{1, 5}, []float64{1, 2, 3, 4, 5}),
		},
		{
			filename: "simple_int32.mat",
			version:  matcore.Version5,
			variable: types.NewNumeric("values", types.Int32, []int{1, 4}, []int32{10, 20, 30, 40}),
		},
		{
			filename: "complex.mat",
			version:  matcore.Version5,
			variable: types.NewNumericComplex("z", types.Double, []int{1, 3},
				[]float64{1, 2, 3}, []float64{4, 5, 6}),
		},
		{
			filename: "matrix_2x3.mat",
			version:  matcore.Version5,
			variable: types.NewNumeric("matrix", types.Double, []int{2, 3}, []float64{1, 2, 3, 4, 5, 6}),
		},
		{
			filename: "sparse_3x3.mat",
			version:  matcore.Version5,
			variable: types.NewSparse("sp", 3, 3, 2, []int32{0, 2}, []int32{0, 1, 1, 2}, []float64{5, 7}),
		},
		{
			filename: "v4_double.mat",
			version:  matcore.Version4,
			variable: types.NewNumeric("data", types.Double, []int{1, 5}, []float64{1, 2, 3, 4, 5}),
		},
	}

	for _, test := range tests {
		path := filepath.Join(testdataDir, test.filename)
		fmt.Printf("writing %s ... ", test.filename)

		sess, err := matcore.Create(path, test.version)
		if err != nil {
			fmt.Printf("FAILED: %v\n", err)
			continue
		}
		if err := sess.WriteVar(test.variable); err != nil {
			fmt.Printf("FAILED: %v\n", err)
			_ = sess.Close()
			continue
		}
		if err := sess.Close(); err != nil {
			fmt.Printf("FAILED: %v\n", err)
			continue
		}
		fmt.Println("ok")
	}

	fmt.Printf("generated %d test files in %s\n", len(tests), testdataDir)
}
