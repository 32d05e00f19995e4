// Command moldcheck validates mold cavity surfaces for manufacturability
// and reports their curvature.
//
// Usage:
//
//	moldcheck validate --cube --dir 0,0,1
//	moldcheck validate --config region.yaml --bvh --workers 4
//	moldcheck curvature --shape sphere --radius 2
//	moldcheck classify --cage part.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
