package main

import "funtree/cmd/cli"

func main() {
	cli.RunCLI()
}
