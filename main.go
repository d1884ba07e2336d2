package main

import "github.com/datastax/csv-projector/cmd"

func main() {
	cmd.Execute()
}
