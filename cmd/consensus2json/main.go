// cmd/consensus2json/main.go
package main

import (
	"os"

	"patlas2json/internal/consensusapp"
)

func main() {
	os.Exit(consensusapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
