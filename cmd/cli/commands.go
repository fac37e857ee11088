package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the match data directory and archive new matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/scan")
	},
}

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Run the processing pipeline over archived matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/process")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the matches in the archive",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/matches")
	},
}

var reportCmd = &cobra.Command{
	Use:   "report [matchID]",
	Short: "Fetch the rendered report for a match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/report?matchID=" + url.QueryEscape(args[0]))
	},
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search archived matches by team, venue or ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/search?q=" + url.QueryEscape(args[0]))
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
