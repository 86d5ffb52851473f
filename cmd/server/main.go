package main

import "passwordy/cmd/server/cmd"

func main() {
	cmd.Execute()
}
