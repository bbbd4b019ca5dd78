package main

import "github.com/avoyan/quittrack/cmd"

func main() {
	cmd.Execute()
}
