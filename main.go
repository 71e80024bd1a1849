package main

import "github.com/tanq16/pagegrab/cmd"

func main() {
	cmd.Execute()
}
