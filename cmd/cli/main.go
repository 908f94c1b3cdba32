package main

import "dormhub/cmd/cli/command"

func main() {
	command.Execute()
}
