// clgeom_devices lists the compute devices visible through the OpenCL
// runtime, in the same order a ClgeomContextManager would report them.
package main

import (
	"flag"
	"fmt"

	clgeom "github.com/anderslreed/libclgeom"
	"github.com/anderslreed/libclgeom/cl"
	"github.com/janpfeifer/must"
)

var flagProbe = flag.Bool("probe", false,
	"Also create and immediately release a context on each device, to verify it is usable.")

func main() {
	flag.Parse()

	mgr := must.M1(clgeom.NewContextManager(cl.Driver{}))
	defer func() { must.M(mgr.Close()) }()

	devices := mgr.Devices()
	fmt.Printf("Found %d device(s):\n", len(devices))
	for i, dev := range devices {
		status := ""
		if *flagProbe {
			if ctx, err := mgr.NewContext(dev); err != nil {
				status = fmt.Sprintf("  [context creation failed: %v]", err)
			} else {
				must.M(ctx.Close())
				status = "  [ok]"
			}
		}
		fmt.Printf("#%d: %s%s\n", i, dev, status)
	}
}
