// Command thriftls runs the Thrift language server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thrift-tools/thriftls/cmd/thriftls/internal/serve"
)

func main() {
	root := &cobra.Command{
		Use:           "thriftls",
		Short:         "Thrift language server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serve.NewCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
