// Command shop is the storefront's command line client. It keeps the cart in
// a local key-value store and checks out through the session proxy when one
// is configured.
package main

import (
	"context"
	"os"
)

func main() {
	root := newRootCommand(os.Stdout, buildFromEnv)
	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
