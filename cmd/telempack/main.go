package main

import "github.com/psas-avionics/telempack/cmd/telempack/cmd"

func main() {
	cmd.Execute()
}
