package main

import "github.com/dunwich/arkham-central-mcp/cmd"

func main() {
	cmd.Execute()
}
