package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mpcwallet/tkeyring/auditlog"
	"github.com/mpcwallet/tkeyring/client/api/dispatcher"
	"github.com/mpcwallet/tkeyring/client/api/http_api"
	"github.com/mpcwallet/tkeyring/client/config"
	"github.com/mpcwallet/tkeyring/client/modules/logger"
	"github.com/mpcwallet/tkeyring/client/modules/state"
	"github.com/mpcwallet/tkeyring/client/repositories/wallet"
	"github.com/mpcwallet/tkeyring/client/services/keyring"
	"github.com/mpcwallet/tkeyring/client/services/session"
	"github.com/mpcwallet/tkeyring/engine/rpcengine"
	"github.com/mpcwallet/tkeyring/pkg/noise"
)

const (
	flagConfigPath   = "config"
	flagUserName     = "username"
	flagListenHost   = "host"
	flagListenPort   = "port"
	flagEngineURL    = "engine_url"
	flagStateDBDSN   = "state_dbdsn"
	flagAuditLogPath = "audit_log_path"
)

func init() {
	rootCmd.PersistentFlags().String(flagConfigPath, "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String(flagUserName, "tkeyring", "Username")
	rootCmd.PersistentFlags().String(flagListenHost, "localhost", "HTTP API host")
	rootCmd.PersistentFlags().Int(flagListenPort, 8080, "HTTP API port")
	rootCmd.PersistentFlags().String(flagEngineURL, "http://localhost:9080", "Engine sidecar URL")
	rootCmd.PersistentFlags().String(flagStateDBDSN, "./tkeyring_state", "State DBDSN")
	rootCmd.PersistentFlags().String(flagAuditLogPath, "./tkeyring_audit.log", "Audit log path")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString(flagConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %v", err)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed(flagUserName) {
		cfg.Username, _ = cmd.Flags().GetString(flagUserName)
	}
	if cmd.Flags().Changed(flagListenHost) {
		cfg.HttpApiConfig.Host, _ = cmd.Flags().GetString(flagListenHost)
	}
	if cmd.Flags().Changed(flagListenPort) {
		cfg.HttpApiConfig.Port, _ = cmd.Flags().GetInt(flagListenPort)
	}
	if cmd.Flags().Changed(flagEngineURL) {
		cfg.EngineURL, _ = cmd.Flags().GetString(flagEngineURL)
	}
	if cmd.Flags().Changed(flagStateDBDSN) {
		cfg.StateDBDSN, _ = cmd.Flags().GetString(flagStateDBDSN)
	}
	if cmd.Flags().Changed(flagAuditLogPath) {
		cfg.AuditLogPath, _ = cmd.Flags().GetString(flagAuditLogPath)
	}
	return cfg, nil
}

func permissionsFromConfig(cfg *config.Config) dispatcher.Permissions {
	perms := dispatcher.Permissions{}
	for origin, methods := range cfg.Permissions {
		for _, m := range methods {
			perms[origin] = append(perms[origin], dispatcher.Method(m))
		}
	}
	return perms
}

func genKeypairCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gen_keypair",
		Short: "generates a noise handshake keypair and prints it",
		RunE: func(cmd *cobra.Command, args []string) error {
			keypair, err := noise.GenerateKeypair()
			if err != nil {
				return fmt.Errorf("failed to generate keypair: %w", err)
			}
			fmt.Printf("public key: %s\n", keypair.PublicKey)
			fmt.Print(keypair.PEM)
			return nil
		},
	}
}

func startCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "starts the threshold keyring daemon",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig(cmd)
			if err != nil {
				log.Fatalf("failed to load configuration: %v", err)
			}

			stateDB, err := state.NewLevelDBState(cfg.StateDBDSN)
			if err != nil {
				log.Fatalf("failed to init state: %v", err)
			}

			audit, err := auditlog.NewFileAuditLog(cfg.AuditLogPath)
			if err != nil {
				log.Fatalf("failed to init audit log: %v", err)
			}

			lg := logger.NewLogger(cfg.Username)
			wallets := wallet.NewWalletRepo(stateDB)
			eng := rpcengine.NewRPCEngine(cfg.EngineURL)
			sessionService := session.NewSessionService(eng, lg)
			keyringService := keyring.NewKeyringService(wallets, audit, lg)
			disp := dispatcher.NewDispatcher(permissionsFromConfig(cfg), keyringService, lg)

			var server http_api.RESTApiProvider
			if err := server.NewServer(cfg, disp, sessionService, keyringService); err != nil {
				log.Fatalf("failed to init HTTP server: %v", err)
			}

			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigs

				log.Println("received signal, stopping daemon...")

				if err := server.Stop(context.Background()); err != nil {
					log.Printf("failed to stop HTTP server: %v", err)
				}
				if err := audit.Close(); err != nil {
					log.Printf("failed to close audit log: %v", err)
				}
				if err := stateDB.Close(); err != nil {
					log.Printf("failed to close state: %v", err)
				}
				os.Exit(0)
			}()

			lg.Log("starting HTTP API on %s", cfg.HttpApiConfig.ListenAddr())
			if err := server.Start(); err != nil {
				log.Fatalf("HTTP server error: %v", err)
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "tkeyringd",
	Short: "threshold keyring daemon",
}

func main() {
	rootCmd.AddCommand(
		startCommand(),
		genKeypairCommand(),
	)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("failed to execute root command: %v", err)
	}
}
