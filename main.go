package main

import "github.com/Islam0mar/micro-lisp/cmd"

func main() {
	cmd.Execute()
}
