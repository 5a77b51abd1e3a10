package main

import "github.com/lcereceda/accessnav/cmd"

func main() {
	cmd.Execute()
}
