package main

import (
	"github.com/seqbench/seqbench/cmd"
)

func main() {
	cmd.Execute()
}
