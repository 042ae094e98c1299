package main

import "github.com/theirongolddev/tripbook/cmd"

func main() {
	cmd.Execute()
}
