// cmd/catalogctl/main.go
package main

import (
	"os"

	"github.com/javajoker/wholesale-catalog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
