package main

import (
	"os"

	"github.com/arthur-debert/promptpaste/cmd/pp"
)

func main() {
	os.Exit(pp.Execute(pp.NewRootCmd()))
}
