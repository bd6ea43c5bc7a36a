package main

import (
	"github.com/oshokin/image-build-ova/cmd/image-build-ova/cmd"
)

func main() {
	cmd.Execute()
}
