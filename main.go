package main

import "github.com/notch-ai/pyprobe/cmd"

func main() {
	cmd.Execute()
}
