package main

import "pseudo-manager/cmd"

func main() {
	cmd.Execute()
}
