package main

import "cashcast/cmd"

func main() {
	cmd.Execute()
}
