package main

import "github.com/neurofleetx/fleetweb/cmd/fleetweb/command"

func main() {
	command.Execute()
}
