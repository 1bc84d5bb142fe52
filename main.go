package main

import "repair-server/cmd"

func main() {
	cmd.Execute()
}
