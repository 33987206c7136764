package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"
	"unicode"

	"github.com/mitchellh/go-homedir"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hance08/keaview/cmd/account"
	"github.com/hance08/keaview/cmd/transaction"
	"github.com/hance08/keaview/internal/app"
	"github.com/hance08/keaview/internal/config"
	"github.com/hance08/keaview/internal/errhandler"
)

var (
	cfgFile   string
	serverURL string
	timeout   time.Duration
	cfg       *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	application := app.NewApp(migrations)
	cleanup := func() {}

	rootCmd := &cobra.Command{
		Use:   "keaview",
		Short: "keaview mirrors a budget server's accounts and transactions in the terminal",
		Long: `keaview follows a budget server over a websocket, keeps an exact mirror
of its accounts and transactions, and sends account and transaction
commands back to it.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog reads its flags from the standard flag set
			_ = flag.CommandLine.Parse(nil)

			if err := initConfig(cmd); err != nil {
				return err
			}
			c, err := application.Init(cfg)
			if err != nil {
				return err
			}
			cleanup = c
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "", "budget server websocket address (overrides server.url)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "how long to wait for the initial snapshot")
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	timeoutFn := func() time.Duration { return timeout }

	rootCmd.AddCommand(account.NewAccountCmd(application, timeoutFn))
	rootCmd.AddCommand(transaction.NewTransactionCmd(application, timeoutFn))

	rootCmd.AddCommand(NewWatchCmd(application))
	rootCmd.AddCommand(NewUICmd(application))
	rootCmd.AddCommand(NewInfoCmd(application))
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewSessionsCmd(application))
	rootCmd.AddCommand(NewReplayCmd(application))
	rootCmd.AddCommand(NewBudgetCmds(application, timeoutFn)...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	cleanup()
	if err != nil {
		if !errhandler.IsInterrupt(err) {
			err = errors.New(capitalize(err.Error()))
		}
		errhandler.HandleError(err)
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	config.SetDefaults(viper.SetDefault)

	if err := createDefaultConfig(); err != nil {
		return fmt.Errorf("failed to ensure config file: %w", err)
	}

	viper.SetEnvPrefix("KEAVIEW")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.BindPFlag("server.url", cmd.Root().PersistentFlags().Lookup("server")); err != nil {
		return fmt.Errorf("failed to bind server flag: %w", err)
	}

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()
	if cfg.Journal.Path != "" {
		expanded, err := homedir.Expand(cfg.Journal.Path)
		if err != nil {
			return fmt.Errorf("invalid journal path: %w", err)
		}
		cfg.Journal.Path = expanded
	}

	return nil
}

func createDefaultConfig() error {
	if cfgFile != "" {
		return nil
	}

	appDir, err := app.AppDataDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
