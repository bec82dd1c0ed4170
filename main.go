package main

import "github.com/brogergvhs/dhu/cmd"

func main() {
	cmd.Execute()
}
