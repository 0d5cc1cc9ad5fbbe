package main

import "github.com/battlesnakeio/arena/cmd/engine/commands"

func main() {
	commands.Execute()
}
