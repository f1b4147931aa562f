package main

import "labware-import/internal/cli"

func main() {
	cli.Execute()
}
