// Command ffxml converts a parameterized topology, stored as ffjson, into
// a Foyer force-field XML file.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chemtk/ffxml/ffjson"
	"github.com/chemtk/ffxml/foyer"
)

var (
	perInstance bool
	annotPath   string
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ffxml <topology.json> <output.xml>",
		Short: "Write a Foyer force-field XML from a parameterized topology",
		Long: `Reads a parameterized molecular topology in ffjson format and writes the
corresponding force-field XML. If the output path ends in .gz the file is
gzip-compressed. By default one entry is written per distinct atom-type
combination; with --per-instance every bond, angle and torsion of the
topology gets its own entry, tagged with atom indices.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			s, err := ffjson.Decode(f)
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			o := foyer.DefaultOptions()
			o.Unique(!perInstance)
			if annotPath != "" {
				af, err := os.Open(annotPath)
				if err != nil {
					return err
				}
				ann := new(foyer.MapAnnotations)
				err = json.NewDecoder(af).Decode(ann)
				af.Close()
				if err != nil {
					return fmt.Errorf("reading %s: %w", annotPath, err)
				}
				o.ForceField(ann)
			}
			return foyer.WriteFile(s, args[1], o)
		},
	}
	cmd.Flags().BoolVar(&perInstance, "per-instance", false, "write one entry per physical term, tagged with atom indices")
	cmd.Flags().StringVar(&annotPath, "forcefield", "", "JSON file with atom-type annotations (classes, elements, definitions, descriptions, references)")
	return cmd
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
