// cmd/mashdist2json/main.go
package main

import (
	"os"

	"patlas2json/internal/distapp"
)

func main() {
	os.Exit(distapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
