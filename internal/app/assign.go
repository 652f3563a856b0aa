// internal/app/assign.go
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"platemap-core/plate"
	"platemap-core/selection"
	"platemap/internal/cli"
	"platemap/internal/config"
	"platemap/internal/indexfile"
	"platemap/internal/output"
	"platemap/internal/session"
)

func newAssignCmd(e *env) *cobra.Command {
	var o cli.AssignOptions
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Build sample sheets for a plate range",
		Long: `Select the rectangle between --start and --end, drop any --exclude wells,
and look up each well's i7 index (its row + --i7-col) and i5 index
(--i5-row + its column). Writes horizontal_output_<ts> and/or
vertical_output_<ts> into --out-dir, or one sheet to stdout.`,
		Example: "  platemap assign --index index.csv --start A1 --end B2 --exclude A2 --i7-col 5 --i5-row C --prefix S_",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inherit(cmd, "index", &o.IndexFile, e.cfg.IndexFile)
			inherit(cmd, "prefix", &o.Prefix, e.cfg.Prefix)
			inherit(cmd, "order", &o.Order, e.cfg.Order)
			inherit(cmd, "format", &o.Format, e.cfg.Format)
			inherit(cmd, "out-dir", &o.OutDir, e.cfg.OutDir)
			if err := o.Validate(); err != nil {
				return usageErr(err)
			}
			return e.runAssign(o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.IndexFile, "index", def.IndexFile, "index sheet (.csv or .xlsx, optionally .gz/.bz2/.xz)")
	f.StringVar(&o.Start, "start", "", "first corner of the range, e.g. A1")
	f.StringVar(&o.End, "end", "", "opposite corner; without it the range stays partial")
	f.StringSliceVar(&o.Exclude, "exclude", nil, "well to leave out (repeatable, or comma-separated)")
	f.IntVar(&o.I7Col, "i7-col", session.DefaultParams.I7Col, "plate column (1-12) to take i7 indexes from")
	f.StringVar(&o.I5Row, "i5-row", string(session.DefaultParams.I5Row), "plate row (A-H) to take i5 indexes from")
	f.BoolVar(&o.I5RevComp, "i5-revcomp", false, "write i5 sequences reverse-complemented")
	f.StringVar(&o.Prefix, "prefix", def.Prefix, "prepended to each Sample_ID")
	f.StringVar(&o.Order, "order", def.Order, "both | horizontal | vertical")
	f.StringVar(&o.Format, "format", def.Format, strings.Join(output.Formats, " | "))
	f.StringVarP(&o.OutDir, "out-dir", "o", def.OutDir, "directory for the sheets")
	f.BoolVar(&o.Stdout, "stdout", false, "write the single sheet to stdout")
	cmd.MarkFlagsMutuallyExclusive("out-dir", "stdout")
	return cmd
}

type sheetFile struct {
	name string
	data []byte
}

func (e *env) runAssign(o cli.AssignOptions) error {
	s, err := e.openSession(o.IndexFile)
	if err != nil {
		return err
	}
	if err := e.applyRange(s, o.RangeOptions); err != nil {
		return err
	}
	if err := s.SetAssignmentParams(o.I7Col, o.I5Row, o.Prefix); err != nil {
		return usageErr(err)
	}
	s.SetI5ReverseComplement(o.I5RevComp)
	if o.End == "" {
		e.warnf("no --end given; the range is partial and sheets hold only the header")
	}

	// Render everything before touching disk so a missing index never
	// leaves half the files behind.
	now := e.now()
	var files []sheetFile
	for _, kind := range o.Kinds() {
		name, data, err := s.Export(o.Format, kind, now)
		if err != nil {
			return usageErr(err)
		}
		files = append(files, sheetFile{name: name, data: data})
	}
	e.log.Debug("sheets built", "wells", len(s.ActiveSelection()), "sheets", len(files))

	if o.Stdout {
		if _, err := e.out.Write(files[0].data); err != nil {
			return outputErr(err)
		}
		return nil
	}

	if err := os.MkdirAll(o.OutDir, 0o755); err != nil {
		return outputErr(err)
	}
	for _, f := range files {
		path := filepath.Join(o.OutDir, f.name)
		if err := os.WriteFile(path, f.data, 0o644); err != nil {
			return outputErr(err)
		}
		if _, err := fmt.Fprintln(e.out, path); err != nil {
			return outputErr(err)
		}
	}
	return nil
}

func (e *env) openSession(path string) (*session.Session, error) {
	tab, info, err := indexfile.Load(path)
	if err != nil {
		return nil, usageErr(err)
	}
	e.log.Debug("index loaded", "path", info.Path, "format", info.Format, "compression", info.Compression, "rows", info.Rows)
	e.warnIgnored(info)
	return session.New("cli", tab), nil
}

// warnIgnored reports sheet rows that can never be looked up.
func (e *env) warnIgnored(info indexfile.Info) {
	if info.Ignored > 0 {
		e.warnf("%s: %d rows ignored (no index key, or key already used by an earlier row)", info.Path, info.Ignored)
	}
}

// applyRange replays the clicks a user would make: start, end, then each
// exclusion.
func (e *env) applyRange(s *session.Session, r cli.RangeOptions) error {
	if r.Start == "" && r.End != "" {
		return usageErr(errors.New("--end needs --start"))
	}
	for _, l := range []string{r.Start, r.End} {
		if l == "" {
			continue
		}
		if err := s.ClickWell(l); err != nil {
			return usageErr(err)
		}
	}
	for _, l := range r.Exclude {
		if err := s.ExcludeWell(l); err != nil {
			return usageErr(err)
		}
		st := s.State()
		if w := plate.MustParse(l); st.Phase() == selection.RangeSet && !st.Rect().Has(w) {
			e.warnf("excluded well %s is outside the range", w)
		}
	}
	return nil
}
