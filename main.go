package main

import "bojctl/cmd"

func main() {
	cmd.Execute()
}
