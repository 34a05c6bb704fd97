package vantage

import (
	"fmt"
	"os"
)

// debugCheckDestroyed panics with a descriptive message when a destroyed
// component is used. Only called when debug mode is on; release-mode callers
// skip this entirely.
func debugCheckDestroyed(c *Component, op string) {
	if c.destroyed {
		panic(fmt.Sprintf("vantage debug: %s on destroyed component %q (type %s)", op, c.id, c.typ))
	}
}

// debugMaxOwnerDepth is the ownership-chain depth beyond which a warning is
// printed. Chains this deep usually mean a construction loop.
const debugMaxOwnerDepth = 32

// debugCheckOwnerDepth warns on stderr when a component's owner chain
// exceeds the threshold.
func debugCheckOwnerDepth(c *Component) {
	depth := 0
	for cur := c; cur != nil; {
		depth++
		if cur.ownerID == "" {
			break
		}
		e, ok := cur.scene.registry.Lookup(cur.ownerID)
		if !ok {
			break
		}
		cur = e.Base()
	}
	if depth > debugMaxOwnerDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[vantage] warning: ownership depth %d exceeds %d (component %q)\n",
			depth, debugMaxOwnerDepth, c.id)
	}
}
