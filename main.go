package main

import "pokerengine/cmd"

func main() {
	cmd.Execute()
}
