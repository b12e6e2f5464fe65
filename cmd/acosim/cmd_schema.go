package main

import (
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/acopath/loader"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of graph files",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loader.Schema()
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		},
	}
}
