package main

import (
	"fmt"
	"os"

	"github.com/threema-gateway/client-go/cmd/threema-gateway/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
