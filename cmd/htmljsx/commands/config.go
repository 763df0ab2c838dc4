package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/livefir/htmljsx/cmd/htmljsx/internal/config"
)

// Config handles configuration management commands
func Config(args []string) error {
	return configCommand(args, os.Stdout)
}

func configCommand(args []string, out io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("command required: get, set, list, path")
	}

	switch command := args[0]; command {
	case "get":
		return configGet(args[1:], out)
	case "set":
		return configSet(args[1:], out)
	case "list":
		return configList(out)
	case "path":
		configPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, configPath)
		return nil
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

// configGet retrieves a configuration value
func configGet(args []string, out io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("key required: htmljsx config get <key>")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	value, err := cfg.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(out, value)
	return nil
}

// configSet sets a configuration value
func configSet(args []string, out io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("key and value required: htmljsx config set <key> <value>")
	}

	key := args[0]
	value := strings.Join(args[1:], " ")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(out, "Set %s to: %s\n", key, value)
	return nil
}

// configList lists all configuration values
func configList(out io.Writer) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Fprintln(out, "Configuration:")
	fmt.Fprintln(out)
	for _, key := range config.Keys {
		value, _ := cfg.Get(key)
		fmt.Fprintf(out, "  %-18s %q\n", key+":", value)
	}
	fmt.Fprintln(out)

	configPath, _ := config.GetConfigPath()
	fmt.Fprintf(out, "Config file: %s\n", configPath)

	return nil
}
