package main

import "github.com/mmuldo/huecode/cmd"

func main() {
	cmd.Execute()
}
