package main

import (
	"context"
	"fmt"
	"os"

	"github.com/telton/swatch/cmds"
)

func main() {
	if err := cmds.Execute(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "swatch:", err)
		os.Exit(1)
	}
}
