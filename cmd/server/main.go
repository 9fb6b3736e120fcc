package main

import "github.com/mcoot/geofinder-go/internal/cli"

func main() {
	cli.Execute()
}
