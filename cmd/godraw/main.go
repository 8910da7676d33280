package main

import "github.com/philipparndt/godraw/cmd"

func main() {
	cmd.Execute()
}
