package main

import "github.com/katalvlaran/graphio/cmd/graphio/commands"

func main() {
	commands.Execute()
}
