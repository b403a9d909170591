// Command trainsim runs the toy train along one of its tracks without a
// screen and reports where it is.
package main

import "github.com/railtoy/track/cmd/trainsim/cmd"

func main() {
	cmd.Execute()
}
