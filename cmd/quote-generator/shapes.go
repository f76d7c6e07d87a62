package main

import (
	"go/types"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"quote-generator/internal/analyze"
)

type shapeView struct {
	Package string      `yaml:"package"`
	Name    string      `yaml:"name"`
	Layout  string      `yaml:"layout"`
	ModPath string      `yaml:"mod_path,omitempty"`
	Pos     string      `yaml:"pos"`
	Fields  []fieldView `yaml:"fields,omitempty"`
}

type fieldView struct {
	Name     string `yaml:"name,omitempty"`
	Position int    `yaml:"position"`
	Type     string `yaml:"type"`
	Embedded bool   `yaml:"embedded,omitempty"`
}

func newShapeView(s *analyze.RecordShape) shapeView {
	v := shapeView{
		Package: s.PkgPath,
		Name:    s.Name,
		Layout:  s.Layout.String(),
		ModPath: s.ModPath(),
		Pos:     s.Pos.String(),
	}

	qualifier := func(p *types.Package) string {
		if p.Path() == s.PkgPath {
			return ""
		}
		return p.Name()
	}

	for _, f := range s.Fields {
		v.Fields = append(v.Fields, fieldView{
			Name:     f.Name,
			Position: f.Position,
			Type:     types.TypeString(f.Type, qualifier),
			Embedded: f.Embedded,
		})
	}

	return v
}

func newCmdShapes(root *rootParams) *cobra.Command {
	var params selectParams

	cmd := &cobra.Command{
		Use:   "shapes [packages]",
		Short: "Print the record shapes that would be derived, as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}

			results, diags, err := deriveAll(cmd.Context(), cfg, &params, true, args)
			if err != nil {
				return err
			}
			printDiagnostics(cmd, root, diags)

			var views []shapeView
			for _, r := range results {
				for _, s := range r.shapes {
					views = append(views, newShapeView(s))
				}
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(views); err != nil {
				return err
			}

			return enc.Close()
		},
	}

	addSelectFlags(cmd.Flags(), &params)

	return cmd
}
