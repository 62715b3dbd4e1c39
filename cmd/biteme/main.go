// biteme — recipe catalog, cooking sessions, and cooking log for the terminal.
package main

import "github.com/bitemeapp/biteme/cmd/biteme/commands"

func main() {
	commands.Execute()
}
