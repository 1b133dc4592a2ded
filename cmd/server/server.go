// Package main is the entry point of the starwars-blog API server.
package main

import (
	"starwars-blog/internal"
)

func main() {
	internal.Init()
}
