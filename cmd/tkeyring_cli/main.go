package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mpcwallet/tkeyring/client/types"
)

const (
	flagListenAddr = "listen_addr"
	flagOrigin     = "origin"
)

func init() {
	rootCmd.PersistentFlags().String(flagListenAddr, "localhost:8080", "Daemon HTTP API address")
	rootCmd.PersistentFlags().String(flagOrigin, "tkeyring-cli", "Origin presented to the permission gate")
}

var rootCmd = &cobra.Command{
	Use:   "tkeyring_cli",
	Short: "threshold keyring cli utilities",
}

func main() {
	rootCmd.AddCommand(
		getAccountsCommand(),
		getWalletCommand(),
		deleteKeyShareCommand(),
	)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("failed to execute root command: %v", err)
	}
}

type apiResponse struct {
	Result       json.RawMessage `json:"result"`
	ErrorMessage string          `json:"error_message,omitempty"`
}

func doRequest(cmd *cobra.Command, method, path string, body interface{}, result interface{}) error {
	listenAddr, err := cmd.Flags().GetString(flagListenAddr)
	if err != nil {
		return fmt.Errorf("failed to read configuration: %v", err)
	}
	origin, err := cmd.Flags().GetString(flagOrigin)
	if err != nil {
		return fmt.Errorf("failed to read configuration: %v", err)
	}

	var reader *bytes.Reader
	if body != nil {
		bz, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(bz)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, fmt.Sprintf("http://%s%s", listenAddr, path), reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", origin)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	var response apiResponse
	if err = json.Unmarshal(responseBody, &response); err != nil {
		return fmt.Errorf("failed to unmarshal response: %v", err)
	}
	if response.ErrorMessage != "" {
		return fmt.Errorf("request failed: %s", response.ErrorMessage)
	}
	if result != nil {
		if err := json.Unmarshal(response.Result, result); err != nil {
			return fmt.Errorf("failed to unmarshal result: %v", err)
		}
	}
	return nil
}

func getAccountsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get_accounts",
		Short: "lists the keyring accounts held by the daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			var accounts []types.KeyringAccount
			if err := doRequest(cmd, http.MethodGet, "/getAccounts", nil, &accounts); err != nil {
				return fmt.Errorf("failed to get accounts: %w", err)
			}
			if len(accounts) == 0 {
				fmt.Println("no accounts yet")
				return nil
			}
			for _, account := range accounts {
				color.New(color.Bold).Printf("%s\n", account.Name)
				fmt.Printf("  id:      %s\n", account.ID)
				fmt.Printf("  address: %s\n", account.Address)
			}
			return nil
		},
	}
}

func getWalletCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get_wallet [address]",
		Args:  cobra.ExactArgs(1),
		Short: "shows the wallet for an address, including its key shares",
		RunE: func(cmd *cobra.Command, args []string) error {
			var wallet types.Wallet
			path := fmt.Sprintf("/getWalletByAddress?address=%s", args[0])
			if err := doRequest(cmd, http.MethodGet, path, nil, &wallet); err != nil {
				return fmt.Errorf("failed to get wallet: %w", err)
			}
			color.New(color.Bold).Printf("%s (%s)\n", wallet.Account.Name, wallet.Account.Address)
			for _, named := range wallet.Shares {
				fmt.Printf("  share %s (%s): t=%d n=%d\n",
					named.ID, named.Label, named.Share.LocalKey.T, named.Share.LocalKey.N)
			}
			return nil
		},
	}
}

func deleteKeyShareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete_key_share [account-id] [key-share-id]",
		Args:  cobra.ExactArgs(2),
		Short: "deletes one key share; proofs and receipts are retained",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{
				"id":         args[0],
				"keyShareId": args[1],
			}
			if err := doRequest(cmd, http.MethodPost, "/deleteKeyShare", body, nil); err != nil {
				return fmt.Errorf("failed to delete key share: %w", err)
			}
			color.Green("key share deleted")
			return nil
		},
	}
}
