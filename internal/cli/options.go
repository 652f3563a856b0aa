// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"platemap-core/samplesheet"
	"platemap/internal/output"
)

// Order values accepted by --order.
const (
	OrderBoth       = "both"
	OrderHorizontal = "horizontal"
	OrderVertical   = "vertical"
)

// GlobalOptions are the persistent flags shared by every command.
type GlobalOptions struct {
	ConfigFile string
	EnvFile    string
	LogLevel   string
	Quiet      bool
}

// RangeOptions describe a plate selection given on the command line.
type RangeOptions struct {
	Start   string
	End     string
	Exclude []string
}

// AssignOptions holds all flags of `platemap assign`.
type AssignOptions struct {
	RangeOptions

	// Index input
	IndexFile string

	// Assignment
	I7Col     int
	I5Row     string
	Prefix    string
	I5RevComp bool

	// Output
	Order  string
	Format string
	OutDir string
	Stdout bool
}

func (o RangeOptions) Validate() error {
	if o.Start == "" {
		return errors.New("--start is required")
	}
	return nil
}

// Validate checks flag combinations; well labels and index values are
// checked later by the session itself.
func (o AssignOptions) Validate() error {
	if err := o.RangeOptions.Validate(); err != nil {
		return err
	}
	if o.IndexFile == "" {
		return errors.New("--index is required")
	}
	switch o.Order {
	case OrderBoth, OrderHorizontal, OrderVertical:
	default:
		return fmt.Errorf("invalid --order %q", o.Order)
	}
	if !output.ValidFormat(o.Format) {
		return fmt.Errorf("invalid --format %q", o.Format)
	}
	if o.Stdout && o.Order == OrderBoth {
		return errors.New("--stdout needs --order horizontal or vertical")
	}
	return nil
}

// Kinds lists the sheets to produce, horizontal first.
func (o AssignOptions) Kinds() []samplesheet.Kind {
	switch o.Order {
	case OrderHorizontal:
		return []samplesheet.Kind{samplesheet.KindHorizontal}
	case OrderVertical:
		return []samplesheet.Kind{samplesheet.KindVertical}
	default:
		return []samplesheet.Kind{samplesheet.KindHorizontal, samplesheet.KindVertical}
	}
}

// IndexOptions holds the flags of `platemap index`.
type IndexOptions struct {
	IndexFile string
	Key       string
}

func (o IndexOptions) Validate() error {
	if o.IndexFile == "" {
		return errors.New("--index is required")
	}
	return nil
}
