package main

import "github.com/otonality/jipitch/cmd"

func main() {
	cmd.Execute()
}
