// Command cortex inspects, merges and traverses colored de Bruijn graphs
// stored in the Cortex binary format.
package main

import "log"

func main() {
	log.SetFlags(0)
	log.SetPrefix("cortex: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
