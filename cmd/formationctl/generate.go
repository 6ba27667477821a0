package main

import (
	"fmt"
	"os"

	"github.com/ogurasousui/formation-docs/internal/adapters/render/pdf"
	"github.com/ogurasousui/formation-docs/internal/core/document"
	"github.com/ogurasousui/formation-docs/internal/core/formation"
	"github.com/spf13/cobra"
)

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a formation document to a PDF file",
		Long: `Validate the formation details and render the matching document locally.
No database is used.

Example:
  formationctl generate --company "Acme LLC" --state CA --type LLC --incorporator "Jane Doe" -o acme.pdf
  formationctl generate --company "Acme Inc" --state NY --type corporation --incorporator "Jane Doe" -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			company, _ := cmd.Flags().GetString("company")
			state, _ := cmd.Flags().GetString("state")
			companyType, _ := cmd.Flags().GetString("type")
			incorporator, _ := cmd.Flags().GetString("incorporator")
			output, _ := cmd.Flags().GetString("output")
			creator, _ := cmd.Flags().GetString("creator")
			noCompress, _ := cmd.Flags().GetBool("no-compress")

			f, err := formation.New(formation.Input{
				CompanyName:      company,
				StateOfFormation: state,
				CompanyType:      companyType,
				IncorporatorName: incorporator,
			})
			if err != nil {
				return err
			}

			generator := document.NewGenerator(pdf.NewRenderer(pdf.Options{
				Creator:  creator,
				Compress: !noCompress,
			}))

			kind, content, err := generator.Generate(f)
			if err != nil {
				return err
			}

			if output == "" {
				output = string(kind) + ".pdf"
			}

			if output == "-" {
				_, err := cmd.OutOrStdout().Write(content)
				return err
			}

			if err := writeFile(output, content); err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%s, %d bytes)\n", output, kind, len(content))
			return nil
		},
	}

	cmd.Flags().String("company", "", "Company name")
	cmd.Flags().String("state", "", "Two-letter state of formation")
	cmd.Flags().String("type", "corporation", "Company type (corporation or LLC)")
	cmd.Flags().String("incorporator", "", "Incorporator or organizer name")
	cmd.Flags().StringP("output", "o", "", "Output file; '-' writes to stdout (default <kind>.pdf)")
	cmd.Flags().String("creator", "", "PDF creator metadata")
	cmd.Flags().Bool("no-compress", false, "Disable PDF stream compression")

	return cmd
}

func writeFile(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
