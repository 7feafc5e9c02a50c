package main

import "rkanban/cmd/rkanban/commands"

func main() {
	commands.Execute()
}
