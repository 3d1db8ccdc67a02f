package main

import "github.com/Alijeyrad/fibersentry/cmd"

func main() {
	cmd.Execute()
}
