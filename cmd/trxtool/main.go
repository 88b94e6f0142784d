package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/bitfsorg/libtrx-go/config"
)

type options struct {
	ConfigFile string   `long:"config" env:"TRX_CONFIG" description:"config file path (default: <datadir>/config)"`
	DataDir    string   `long:"datadir" env:"TRX_DATADIR" description:"data directory"`
	Network    string   `long:"network" env:"TRX_NETWORK" description:"network name (mainnet, testnet, regtest)"`
	LogLevel   string   `long:"log-level" env:"TRX_LOG_LEVEL" description:"log level"`
	Height     uint32   `long:"height" description:"chain height to validate or commit at"`
	Expire     uint32   `long:"expire" description:"expire block for built transactions (default: height + 1000)"`
	Inputs     []string `long:"input" description:"output to spend, #index or hash:index (repeatable)"`
	Keys       []string `long:"key" description:"hex private key signing the matching --input (repeatable)"`
	Outputs    []string `long:"output" description:"address:amount[:unit] (repeatable)"`

	Args struct {
		Command string   `positional-arg-name:"command" description:"keygen, pay, mint, inspect, validate, apply, show, unspent" required:"true"`
		Rest    []string `positional-arg-name:"arg"`
	} `positional-args:"yes"`
}

func main() {
	opts := options{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&opts, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, opts, logger, os.Stdout); err != nil {
		logger.Fatal("trxtool failed", zap.String("command", opts.Args.Command), zap.Error(err))
	}
}

// loadConfig reads the config file and applies flag overrides. A missing
// file is only an error when --config names it explicitly.
func loadConfig(opts options) (config.Config, error) {
	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = config.DefaultDataDir()
	}
	path := opts.ConfigFile
	if path == "" {
		path = config.ConfigPath(dataDir)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		if opts.ConfigFile != "" || !errors.Is(err, config.ErrConfigNotFound) {
			return cfg, err
		}
		cfg = config.DefaultConfig()
	}

	if opts.DataDir != "" {
		cfg.DataDir = opts.DataDir
	}
	if opts.Network != "" {
		cfg.Network = opts.Network
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg config.Config, opts options, logger *zap.Logger, out io.Writer) error {
	logger = logger.With(zap.String("command", opts.Args.Command))

	switch opts.Args.Command {
	case "keygen":
		return keygen(out)
	case "pay":
		return pay(opts, out)
	case "inspect":
		return withArgs(opts, func(path string) error { return inspect(path, out) })
	}

	store, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Warn("close chain state", zap.Error(cerr))
		}
	}()

	switch opts.Args.Command {
	case "mint":
		return mint(store, opts, logger, out)
	case "validate":
		v, err := newValidator(cfg, store, logger)
		if err != nil {
			return err
		}
		return withArgs(opts, func(path string) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return validate(v, path, opts.Height, out)
		})
	case "apply":
		v, err := newValidator(cfg, store, logger)
		if err != nil {
			return err
		}
		return withArgs(opts, func(path string) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return apply(v, path, opts.Height, out)
		})
	case "show":
		return withArgs(opts, func(txid string) error { return show(store, txid, out) })
	case "unspent":
		return unspent(store, out)
	default:
		return fmt.Errorf("unknown command %q", opts.Args.Command)
	}
}

func withArgs(opts options, fn func(string) error) error {
	if len(opts.Args.Rest) == 0 {
		return fmt.Errorf("%s: missing argument", opts.Args.Command)
	}
	for _, arg := range opts.Args.Rest {
		if err := fn(arg); err != nil {
			return fmt.Errorf("%s %s: %w", opts.Args.Command, arg, err)
		}
	}
	return nil
}
