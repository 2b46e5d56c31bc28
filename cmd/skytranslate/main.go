// Command skytranslate rewrites build definitions into the Skylark dialect.
package main

import "martianoff/skytranslate/cmd/skytranslate/commands"

func main() {
	commands.Execute()
}
