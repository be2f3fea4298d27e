package main

import "github.com/rbhale-git/laser-tms/cmd"

func main() {
	cmd.Execute()
}
