package main

import "github.com/brogergvhs/erosscans/cmd"

func main() {
	cmd.Execute()
}
