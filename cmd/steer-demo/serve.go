package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vango-dev/steer/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		addr        string
		toggleLimit int
		stepperMin  int
		stepperMax  int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the demo server",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := server.DefaultServerConfig()
			config.Address = addr
			config.ToggleLimit = toggleLimit
			config.StepperMin = stepperMin
			config.StepperMax = stepperMax

			success("steer demo listening on %s", addr)
			info("open http://localhost%s in a browser", addr)
			info("metrics at http://localhost%s/metrics", addr)

			return server.New(config).ListenAndServe(context.Background())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().IntVar(&toggleLimit, "toggle-limit", 4, "toggles allowed before the limit reducer vetoes")
	cmd.Flags().IntVar(&stepperMin, "stepper-min", 0, "stepper lower bound")
	cmd.Flags().IntVar(&stepperMax, "stepper-max", 10, "stepper upper bound")

	return cmd
}
