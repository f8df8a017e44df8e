package main

import "github.com/strrl/termclock/cmd/termclock/commands"

func main() {
	commands.Execute()
}
