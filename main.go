package main

import "github.com/masmgr/pathchanged/cmd"

func main() {
	cmd.Run()
}
