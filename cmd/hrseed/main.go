package main

import "github.com/hrseed/hrseed/cmd/hrseed/cmd"

func main() {
	cmd.Execute()
}
