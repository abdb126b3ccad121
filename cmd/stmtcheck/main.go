// Command stmtcheck checks statement trees described in YAML.
package main

import (
	"os"

	"github.com/t14raptor/go-stmt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
