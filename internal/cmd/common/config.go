package common

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding flags, e.g. KEYLEEK_MIN_CONFIDENCE.
const EnvPrefix = "KEYLEEK"

// InitConfig loads the optional config file and environment overrides and
// applies them to every flag of cmd the user did not set explicitly. It returns
// the config file used, if any.
func InitConfig(cmd *cobra.Command) (string, error) {
	v := viper.New()

	if ConfigFile != "" {
		v.SetConfigFile(ConfigFile)
	} else {
		if cwd, err := os.Getwd(); err == nil {
			v.AddConfigPath(cwd)
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "keyleek"))
		}
		v.SetConfigType("yaml")
		v.SetConfigName("keyleek")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	used := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if ConfigFile != "" || !errors.As(err, &notFound) {
			return "", fmt.Errorf("failed reading config file: %w", err)
		}
	} else {
		used = v.ConfigFileUsed()
	}

	return used, applyConfig(cmd, v)
}

func applyConfig(cmd *cobra.Command, v *viper.Viper) error {
	var applyErr error
	visit := func(f *pflag.Flag) {
		if applyErr != nil || f.Changed || f.Name == "config" || f.Name == "help" {
			return
		}
		if !v.IsSet(f.Name) {
			return
		}

		value := v.GetString(f.Name)
		if f.Value.Type() == "stringSlice" || f.Value.Type() == "stringArray" {
			value = strings.Join(v.GetStringSlice(f.Name), ",")
		}
		if value == f.Value.String() {
			return
		}
		if err := f.Value.Set(value); err != nil {
			applyErr = fmt.Errorf("invalid value %q for %s from config: %w", value, f.Name, err)
		}
	}

	cmd.Flags().VisitAll(visit)
	return applyErr
}
