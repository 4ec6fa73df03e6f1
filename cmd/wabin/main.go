// Package main implements the wabin CLI, a tool to inspect the contents of
// WebAssembly binaries.
package main

func main() {
	Execute()
}
