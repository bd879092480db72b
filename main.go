package main

import "medicare/cmd"

func main() {
	cmd.Execute()
}
