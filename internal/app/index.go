// internal/app/index.go
package app

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"platemap-core/index"
	"platemap-core/oligo"
	"platemap-core/plate"
	"platemap/internal/cli"
	"platemap/internal/config"
	"platemap/internal/indexfile"
)

func newIndexCmd(e *env) *cobra.Command {
	var o cli.IndexOptions
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Check an index sheet, or show one entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inherit(cmd, "index", &o.IndexFile, e.cfg.IndexFile)
			if err := o.Validate(); err != nil {
				return usageErr(err)
			}
			return e.runIndex(o)
		},
	}
	cmd.Flags().StringVar(&o.IndexFile, "index", config.Default().IndexFile, "index sheet")
	cmd.Flags().StringVar(&o.Key, "key", "", "print the entry for this well key, e.g. C1")
	return cmd
}

func (e *env) runIndex(o cli.IndexOptions) error {
	tab, info, err := indexfile.Load(o.IndexFile)
	if err != nil {
		return usageErr(err)
	}

	e.warnIgnored(info)

	tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
	if o.Key != "" {
		ent, ok := tab.Entry(o.Key)
		if !ok {
			return usageErr(&index.NotFoundError{Key: index.NormalizeKey(o.Key), Kind: index.I7})
		}
		fmt.Fprintln(tw, strings.Join([]string{indexfile.ColKey, indexfile.ColI7Name, indexfile.ColI7Index, indexfile.ColI5Name, indexfile.ColI5Index, "i5-index-rc"}, "\t"))
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", ent.Key, ent.I7Name, ent.I7Index, ent.I5Name, ent.I5Index, oligo.RevComp(ent.I5Index))
	} else {
		fmt.Fprintf(tw, "file:\t%s\n", info.Path)
		fmt.Fprintf(tw, "format:\t%s\n", info.Format)
		fmt.Fprintf(tw, "compression:\t%s\n", info.Compression)
		fmt.Fprintf(tw, "entries:\t%d\n", info.Rows)
		if info.Ignored > 0 {
			fmt.Fprintf(tw, "ignored rows:\t%d\n", info.Ignored)
		}
		if missing := missingWells(tab); len(missing) > 0 {
			fmt.Fprintf(tw, "missing wells:\t%s\n", strings.Join(missing, " "))
			e.warnf("%d plate wells have no index entry", len(missing))
		}
	}
	if err := tw.Flush(); err != nil {
		return outputErr(err)
	}
	return nil
}

// missingWells lists plate wells the sheet has no row for. Such wells can
// still be selected; their lookups fail at build time.
func missingWells(tab *index.Table) []string {
	var out []string
	for _, w := range plate.All() {
		if _, ok := tab.Entry(w.String()); !ok {
			out = append(out, w.String())
		}
	}
	return out
}
