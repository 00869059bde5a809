// Command upgraph reduces lambda terms on a shared graph with
// uplinks, preserving sharing and copying only what a beta reduction
// must.
package main

import "github.com/uplinkgraph/upgraph/cmd/upgraph"

func main() {
	upgraph.Execute()
}
