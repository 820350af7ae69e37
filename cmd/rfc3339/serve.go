package main

import (
	"log"
	"os"

	"github.com/ngrash/go-rfc3339/internal/server"
	"github.com/spf13/cobra"
)

const defaultPort = "8080"

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP parse server",
		Long: `Serve answers GET /parse?ts=TIMESTAMP with the parsed fields as JSON and
POST /scan with a line-by-line report of the request body.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Use PORT env var if set, otherwise use flag value
			if envPort := os.Getenv("PORT"); envPort != "" && !cmd.Flags().Changed("port") {
				port = envPort
			}

			app := server.New(server.Config{Logging: true})

			log.Printf("Starting server on :%s", port)
			return app.Listen(":" + port)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", defaultPort, "Port to run the server on")
	return cmd
}
