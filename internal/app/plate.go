// internal/app/plate.go
package app

import (
	"github.com/spf13/cobra"

	"platemap/internal/cli"
	"platemap/internal/pretty"
	"platemap/internal/session"
)

func newPlateCmd(e *env) *cobra.Command {
	var (
		r         cli.RangeOptions
		noSummary bool
	)
	cmd := &cobra.Command{
		Use:   "plate",
		Short: "Print the plate map for a range",
		Long: `Print the 8x12 plate with the range start in (), the end in <>,
other selected wells in [] and excluded wells blank.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// No index needed to draw the grid.
			s := session.New("plate", nil)
			if err := e.applyRange(s, r); err != nil {
				return err
			}
			o := pretty.DefaultOptions
			o.Summary = !noSummary
			if err := pretty.WritePlate(e.out, s.State(), o); err != nil {
				return outputErr(err)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&r.Start, "start", "", "first corner of the range")
	f.StringVar(&r.End, "end", "", "opposite corner")
	f.StringSliceVar(&r.Exclude, "exclude", nil, "well to leave out (repeatable)")
	f.BoolVar(&noSummary, "no-summary", false, "print only the grid")
	return cmd
}
