package main

import "github.com/user/aiscan/cmd"

func main() {
	cmd.Execute()
}
