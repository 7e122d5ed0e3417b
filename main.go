package main

import "github.com/LegacyCodeHQ/solflat/cmd"

func main() {
	cmd.Execute()
}
