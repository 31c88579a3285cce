package main

import "github.com/KaramelBytes/fronteditor-cli/cmd"

func main() {
	cmd.Execute()
}
