package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/pagewire"
)

var (
	cfgFile string
	siteCfg pagewire.SiteConfig
)

var rootCmd = &cobra.Command{
	Use:   "pagewire",
	Short: "pagewire - serve config-driven HTML pages",
	Long: `pagewire serves plain HTML page shells and fills their navigation,
hero, sponsors, footer and news panel from a JSON configuration document.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./pagewire.yaml)")

	f := rootCmd.PersistentFlags()
	f.String("site-dir", "", "directory holding page shells and assets (default: embedded sample site)")
	f.String("config-path", "", "configuration resource relative to the site (default data.json)")
	f.String("config-base-url", "", "fetch the configuration from this base URL instead of the site")
	f.String("feed-url", "", "RSS feed shown in the news panel")
	f.String("feed-mode", "", `feed transport: "proxy" or "rss"`)
	f.String("url-policy", "", `URL policy: "blocklist" or "allowlist"`)

	rootCmd.AddCommand(serveCmd, renderCmd, newCmd, versionCmd)
}

// flagKeys maps persistent flags to the SiteConfig keys they override.
var flagKeys = map[string]string{
	"site-dir":        "siteDir",
	"config-path":     "configPath",
	"config-base-url": "configBaseURL",
	"feed-url":        "feedURL",
	"feed-mode":       "feedMode",
	"url-policy":      "urlPolicy",
}

// loadConfig merges the config file, PAGEWIRE_* environment variables and
// flags into siteCfg. Flags win over the environment, which wins over the file.
func loadConfig(cmd *cobra.Command) error {
	v := viper.New()

	v.SetDefault("name", "Site")
	v.SetDefault("url", "http://localhost:3000")
	v.SetDefault("addr", ":3000")
	for key, zero := range map[string]interface{}{
		"siteDir": "", "configPath": "", "configBaseURL": "",
		"feedURL": "", "feedProxyURL": "", "feedMode": "", "feedLimit": 0,
		"feedCacheTTL": 0, "urlPolicy": "", "shellCacheTTL": 0,
		"watch": false, "rateLimit": 0.0,
	} {
		v.SetDefault(key, zero)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("pagewire")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PAGEWIRE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if fl := cmd.Flags().Lookup(name); fl != nil {
			if err := v.BindPFlag(key, fl); err != nil {
				return err
			}
		}
	}
	for _, name := range []string{"addr", "watch", "rate-limit"} {
		if fl := cmd.Flags().Lookup(name); fl != nil {
			if err := v.BindPFlag(camel(name), fl); err != nil {
				return err
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&siteCfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return nil
}

func camel(flag string) string {
	parts := strings.Split(flag, "-")
	for i := 1; i < len(parts); i++ {
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}
