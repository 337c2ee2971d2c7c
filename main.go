package main

import "github.com/hotdogccs/hotdogsim/cmd"

func main() {
	cmd.Execute()
}
