// cmd/mashscreen2json/main.go
package main

import (
	"os"

	"patlas2json/internal/screenapp"
)

func main() {
	os.Exit(screenapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
