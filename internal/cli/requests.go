package cli

import (
	"github.com/spf13/cobra"
)

func newRequestsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "List loaded rebalance requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cmd)

			pipeline, err := app.Pipeline()
			if err != nil {
				return err
			}
			requests := pipeline.Requests()

			if out.IsJSON() {
				return out.JSON(requests)
			}

			out.Printf("Loaded %d rebalance requests\n\n", len(requests))
			for _, req := range requests {
				out.Printf("%s  (%d criteria)\n", req.RequestIdentifier, len(req.Criteria))
				for _, c := range req.Criteria {
					out.Printf("    %s %s %v\n", c.Attribute, c.Operator, c.Value)
				}
			}
			return nil
		},
	}
	return cmd
}
