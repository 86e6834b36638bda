package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wallet-cli",
		Short: "Wallet CLI tool",
		Long:  `A command line interface for interacting with the wallet API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the wallet API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(accountCmd(), transactionCmd(), balanceCmd(), historyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	var name, surname, username string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Run: func(cmd *cobra.Command, args []string) {
			post("/api/v1/accounts", map[string]string{
				"name":     name,
				"surname":  surname,
				"username": username,
			})
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "First name")
	createCmd.Flags().StringVar(&surname, "surname", "", "Surname")
	createCmd.Flags().StringVar(&username, "username", "", "Unique username")
	createCmd.MarkFlagRequired("name")
	createCmd.MarkFlagRequired("username")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/accounts/" + args[0])
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/accounts")
		},
	}

	cmd.AddCommand(createCmd, getCmd, listCmd)

	return cmd
}

func transactionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction operations",
	}

	var id, accountID, amount, currency, direction string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction to the ledger",
		Run: func(cmd *cobra.Command, args []string) {
			if id == "" {
				id = uuid.NewString()
			}
			post("/api/v1/transactions", map[string]string{
				"id":         id,
				"account_id": accountID,
				"amount":     amount,
				"currency":   currency,
				"direction":  direction,
			})
		},
	}
	addCmd.Flags().StringVar(&id, "id", "", "Transaction id (UUID, generated when omitted)")
	addCmd.Flags().StringVar(&accountID, "account", "", "Account id")
	addCmd.Flags().StringVar(&amount, "amount", "", "Amount, e.g. 10.00")
	addCmd.Flags().StringVar(&currency, "currency", "USD", "3-letter currency code")
	addCmd.Flags().StringVar(&direction, "direction", "CREDIT", "CREDIT or DEBIT")
	addCmd.MarkFlagRequired("account")
	addCmd.MarkFlagRequired("amount")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get a transaction",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/transactions/" + args[0])
		},
	}

	cmd.AddCommand(addCmd, getCmd)

	return cmd
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <account-id>",
		Short: "Show an account's balance in the base currency",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/accounts/" + args[0] + "/balance")
		},
	}
}

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <account-id>",
		Short: "Show an account's transactions, most recent first",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/accounts/" + args[0] + "/transactions")
		},
	}
}

func get(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}

	printResponse(resp)
}

func post(path string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Error encoding request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}

	printResponse(resp)
}

func printResponse(resp *http.Response) {
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
	} else {
		fmt.Println(pretty.String())
	}

	if resp.StatusCode >= 400 {
		os.Exit(1)
	}
}
