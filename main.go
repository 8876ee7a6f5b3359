package main

import "github.com/EaseCHAOS/easechaos/cmd"

func main() {
	cmd.Execute()
}
