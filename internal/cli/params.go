package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"domino-detect/internal/config"
)

// loadParams returns the defaults, or the params file when one is given.
func loadParams(path string) (config.Params, error) {
	if path == "" {
		return config.DefaultParams(), nil
	}
	return config.Load(path)
}

func paramsCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "params",
		Short: "Print detection parameters (defaults, or --config merged over them)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := loadParams(opts.config)
			if err != nil {
				return err
			}
			data, err := params.Encode(format)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or json")
	return cmd
}
