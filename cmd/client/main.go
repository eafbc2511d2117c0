package main

import "snipmark/cmd/client/cmd"

func main() {
	cmd.Execute()
}
