// internal/app/version.go
package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"platemap/internal/version"
)

func newVersionCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(e.out, "platemap version %s\n", version.Version)
			return err
		},
	}
}
