package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/dunwich/arkham-central-mcp/config"
	"github.com/dunwich/arkham-central-mcp/internal/arkham"
	"github.com/dunwich/arkham-central-mcp/internal/httputil"
	"github.com/dunwich/arkham-central-mcp/internal/logging"
	"github.com/dunwich/arkham-central-mcp/internal/polite"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "arkham-central",
	Short: "ArkhamCentral MCP - fan-created Arkham Horror LCG scenario server",
	Long:  "A CLI tool and MCP server that retrieves fan-created Arkham Horror LCG scenarios from arkhamcentral.com.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("base-url", "", "Upstream site base URL (default arkhamcentral.com)")
	rootCmd.PersistentFlags().String("user-agent", "", "User-Agent for upstream requests")
	rootCmd.PersistentFlags().String("delay-profile", "", "Delay profile: cautious, normal, aggressive, none")
	rootCmd.PersistentFlags().Bool("respect-robots", true, "Respect robots.txt rules")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
}

func initConfig() {
	cfg = config.DefaultConfig()
	cfg.LoadFromEnv()

	// Override from flags
	if v, _ := rootCmd.PersistentFlags().GetString("base-url"); v != "" {
		cfg.BaseURL = v
	}
	if v, _ := rootCmd.PersistentFlags().GetString("user-agent"); v != "" {
		cfg.UserAgent = v
	}
	if v, _ := rootCmd.PersistentFlags().GetString("delay-profile"); v != "" {
		cfg.DelayProfile = v
	}
	if v, _ := rootCmd.PersistentFlags().GetBool("respect-robots"); !v {
		cfg.RespectRobots = false
	}
	if v, _ := rootCmd.PersistentFlags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}

	logging.Setup(cfg.LogLevel)
}

// buildHTTPClient creates the politeness-wrapped HTTP client from config.
func buildHTTPClient() *http.Client {
	// Robots fetches go through a plain client so they bypass the pipeline.
	robots := polite.NewRobotsChecker(&http.Client{Timeout: cfg.RequestTimeout}, cfg.RespectRobots)

	transport := &polite.Transport{
		Base: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
		},
		UserAgent: cfg.UserAgent,
		Robots:    robots,
		Limiter:   rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst),
		Delay:     polite.NewDelay(polite.DelayProfile(cfg.DelayProfile)),
	}

	return httputil.NewClient(transport, cfg.RequestTimeout)
}

// newService builds the scenario retrieval service shared by all commands.
func newService() *arkham.Service {
	return arkham.NewService(buildHTTPClient(), cfg.BaseURL)
}
