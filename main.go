package main

import (
	"github.com/gpukit/jitlink/cmd"
)

func main() {
	cmd.Execute()
}
