package main

import "github.com/techagentng/citizenrate/cli"

func main() {
	cli.Execute()
}
