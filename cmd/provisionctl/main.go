package main

import (
	"os"

	"provisionctl/internal/provision"
)

func main() {
	os.Exit(provision.Main())
}
