// Package main provides an example of using the MAT-file reader library.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/scigolib/matcore"
)

func main() {
	file, err := os.Open("data.mat")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close() //nolint:errcheck // Example code, cleanup on exit

	sess, err := matcore.Open(file)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("MAT-file version:", sess.FileVersion())
	fmt.Println("Description:", sess.Description())

	for i := 1; ; i++ {
		v, err := sess.ReadNext()
		if errors.Is(err, matcore.ErrNoMoreVariables) {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%d. %s: class=%s dims=%v\n", i, v.Name, v.Class, v.Dims())
	}
}
