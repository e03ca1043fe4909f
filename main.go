package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/rm-hull/prop-firms-api/cmd"
)

func main() {
	var port int
	var debug bool
	var redirectsOut, exportOut string
	var concurrency int

	rootCmd := &cobra.Command{
		Use:  "prop-firms",
		Long: `Prop firm directory API: normalizes the firm spreadsheet and builds affiliate links`,
	}

	apiServerCmd := &cobra.Command{
		Use:   "api-server [--port <port>] [--debug]",
		Short: "Start HTTP API server",
		Run: func(_ *cobra.Command, _ []string) {
			if err := cmd.ApiServer(port, debug); err != nil {
				log.Fatalf("API server failed: %v", err)
			}
		},
	}
	apiServerCmd.Flags().IntVar(&port, "port", 8080, "Port to run HTTP server on")
	apiServerCmd.Flags().BoolVar(&debug, "debug", false, "Enable debugging (pprof) - WARNING: do not enable in production")

	redirectsCmd := &cobra.Command{
		Use:   "redirects [--out <file>]",
		Short: "Write the affiliate redirect table as JSON",
		Run: func(_ *cobra.Command, _ []string) {
			if err := cmd.Redirects(redirectsOut); err != nil {
				log.Fatalf("redirects failed: %v", err)
			}
		},
	}
	redirectsCmd.Flags().StringVar(&redirectsOut, "out", "-", "Output file, or - for stdout")

	exportCmd := &cobra.Command{
		Use:   "export [--out <file>]",
		Short: "Export the firm directory to an XLSX workbook",
		Run: func(_ *cobra.Command, _ []string) {
			if err := cmd.Export(exportOut); err != nil {
				log.Fatalf("export failed: %v", err)
			}
		},
	}
	exportCmd.Flags().StringVar(&exportOut, "out", "data/firms.xlsx", "Output workbook path")

	logosCmd := &cobra.Command{
		Use:   "logos [--concurrency <n>]",
		Short: "Discover logo images from each firm's homepage",
		Run: func(_ *cobra.Command, _ []string) {
			if err := cmd.Logos(concurrency); err != nil {
				log.Fatalf("logo discovery failed: %v", err)
			}
		},
	}
	logosCmd.Flags().IntVar(&concurrency, "concurrency", 4, "Homepages fetched at once")

	rootCmd.AddCommand(apiServerCmd, redirectsCmd, exportCmd, logosCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
