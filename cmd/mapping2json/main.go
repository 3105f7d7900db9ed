// cmd/mapping2json/main.go
package main

import (
	"os"

	"patlas2json/internal/mappingapp"
)

func main() {
	os.Exit(mappingapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
