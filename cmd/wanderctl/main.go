// wanderctl is the terminal client for WanderSphere. It hosts the page
// loaders the way the reference browser client hosts its pages.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
