package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/dhamidi/simparse/varlist"
)

func newVarsCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "vars <file>",
		Short: "Parse a labeled variable list and dump the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			list, err := varlist.Parse(data)
			if err != nil {
				return fmt.Errorf("parse variable list: %w", err)
			}

			switch outputFormat {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(list); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			case "table":
				table := tablewriter.NewWriter(os.Stdout)
				table.SetHeader([]string{"#", "Name"})
				table.SetAlignment(tablewriter.ALIGN_LEFT)
				for i, name := range list.Names {
					table.Append([]string{strconv.Itoa(i + 1), name})
				}
				table.Render()
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, table)")

	return cmd
}
