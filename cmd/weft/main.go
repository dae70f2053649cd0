// Command weft is a small demo host for the composition runtime: it
// mounts a component tree, prints the bound output tree as a terminal
// listing, and feeds handler ids typed on stdin back into the
// renderer.
package main

func main() {
	Execute()
}
