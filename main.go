package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arcanaland/twentyone/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrMissingSeed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
