package main

import (
	"fmt"
	"strings"

	"github.com/ogurasousui/formation-docs/internal/core/document"
	"github.com/ogurasousui/formation-docs/internal/core/formation"
	"github.com/spf13/cobra"
)

func jurisdictionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jurisdictions",
		Short: "List accepted state of formation codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			supportedOnly, _ := cmd.Flags().GetBool("supported")
			out := cmd.OutOrStdout()

			for _, code := range formation.Jurisdictions() {
				kinds := supportedKinds(code)
				if supportedOnly && len(kinds) == 0 {
					continue
				}
				if len(kinds) == 0 {
					fmt.Fprintln(out, code)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", code, joinKinds(kinds))
			}
			return nil
		},
	}

	cmd.Flags().Bool("supported", false, "Only list jurisdictions with a document template")

	return cmd
}

func supportedKinds(state string) []document.Kind {
	var kinds []document.Kind
	for _, t := range []formation.CompanyType{formation.CompanyTypeCorporation, formation.CompanyTypeLLC} {
		kind, err := document.Lookup(formation.CompanyFormation{StateOfFormation: state, CompanyType: t})
		if err == nil {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

func joinKinds(kinds []document.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ",")
}
