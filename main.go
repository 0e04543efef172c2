package main

import "spasctl/cmd"

func main() {
	cmd.Execute()
}
