package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
	actorID string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "budgetledger-cli",
		Short: "Budget ledger CLI tool",
		Long:  `A command line interface for interacting with the budget execution ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the budget ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&actorID, "actor", "cli", "Actor ID sent with each request")

	budgetCmd := &cobra.Command{
		Use:   "budget",
		Short: "Budget operations",
	}

	statsCmd := &cobra.Command{
		Use:   "stats <budget-id>",
		Short: "Show modification statistics for a budget",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			showStats(args[0])
		},
	}

	consistencyCmd := &cobra.Command{
		Use:   "consistency <budget-id>",
		Short: "Check a budget's conservation invariants",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			checkConsistency(args[0])
		},
	}

	budgetCmd.AddCommand(statsCmd)
	budgetCmd.AddCommand(consistencyCmd)
	rootCmd.AddCommand(budgetCmd)

	modificationsCmd := &cobra.Command{
		Use:   "modifications",
		Short: "Modification operations",
	}

	var listStatus, listType string
	listCmd := &cobra.Command{
		Use:   "list <budget-id>",
		Short: "List modifications of a budget",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			listModifications(args[0], listStatus, listType)
		},
	}
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (PENDING, APPROVED, REJECTED)")
	listCmd.Flags().StringVar(&listType, "type", "", "Filter by type (TRASPASO, CREDITO_ADICIONAL, REDUCCION, RECTIFICACION)")

	modificationsCmd.AddCommand(listCmd)
	rootCmd.AddCommand(modificationsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func get(path string) map[string]any {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("X-Actor-ID", actorID)

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	return result
}

func showStats(budgetID string) {
	result := get("/api/v1/budgets/" + budgetID + "/stats")

	fmt.Printf("Budget: %s\n", result["budget_id"])
	fmt.Printf("Total modifications: %v\n", result["total"])
	fmt.Printf("  Pending:  %v\n", result["pending"])
	fmt.Printf("  Approved: %v\n", result["approved"])
	fmt.Printf("  Rejected: %v\n", result["rejected"])
	fmt.Printf("Total approved amount: %v\n", result["total_approved_amount"])

	if byType, ok := result["by_type"].(map[string]any); ok && len(byType) > 0 {
		fmt.Println("By type:")
		for t, c := range byType {
			fmt.Printf("  %s: %v\n", t, c)
		}
	}
}

func checkConsistency(budgetID string) {
	result := get("/api/v1/budgets/" + budgetID + "/consistency")

	consistent, _ := result["is_consistent"].(bool)
	if consistent {
		fmt.Println("Consistency check PASSED")
	} else {
		fmt.Println("Consistency check FAILED")
	}
	fmt.Printf("Allocated sum:      %v\n", result["allocated_sum"])
	fmt.Printf("Expected allocated: %v\n", result["expected_allocated"])
	fmt.Printf("Difference:         %v\n", result["difference"])

	if invalid, ok := result["invalid_item_ids"].([]any); ok && len(invalid) > 0 {
		fmt.Printf("Invalid items: %v\n", invalid)
	}

	if !consistent {
		os.Exit(1)
	}
}

func listModifications(budgetID, status, modType string) {
	params := url.Values{}
	if status != "" {
		params.Set("status", status)
	}
	if modType != "" {
		params.Set("type", modType)
	}

	path := "/api/v1/budgets/" + budgetID + "/modifications"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	client := &http.Client{Timeout: timeout}
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("X-Actor-ID", actorID)

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var mods []map[string]any
	if err := json.Unmarshal(body, &mods); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if len(mods) == 0 {
		fmt.Println("No modifications found")
		return
	}

	for _, m := range mods {
		fmt.Printf("%s  %-18s %-10s %12v  %s\n",
			m["id"], m["type"], m["status"], m["amount"], m["reference"])
	}
}
