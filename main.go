package main

import "github.com/notargets/goblackoil/cmd"

func main() {
	cmd.Execute()
}
