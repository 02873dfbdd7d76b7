package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rojanmagar2001/goimgdl/internal/app"
	"github.com/rojanmagar2001/goimgdl/internal/config"
)

var version = "1.0"

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(app.ExitCode(err))
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var configFile string
	flags := config.Default()

	cmd := &cobra.Command{
		Use:           "imgdl",
		Short:         "Downloads images from a webpage",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return app.Usage(fmt.Errorf("unexpected arguments: %v", args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return &app.Error{Kind: app.KindConfig, Err: err}
			}
			applyFlags(cmd.Flags(), &cfg, flags)

			return app.Run(cmd.Context(), cfg, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return app.Usage(err)
	})

	bindFlags(cmd.Flags(), &flags, &configFile)
	return cmd
}

func bindFlags(fs *pflag.FlagSet, cfg *config.Config, configFile *string) {
	fs.StringVarP(&cfg.URL, "url", "u", "", "Sets the URL to fetch images from")
	fs.StringVarP(&cfg.HTML, "html", "H", "", "Sets the HTML file to parse for images")
	fs.StringVarP(&cfg.Dir, "dir", "d", cfg.Dir, "Sets the output directory for downloaded images")
	fs.StringVarP(&cfg.Proxy, "proxy", "p", "", "Sets the proxy server to use (e.g., http://proxy.example.com:8080)")
	fs.StringVarP(&cfg.UserAgent, "user-agent", "a", cfg.UserAgent, "Sets the User-Agent header for HTTP requests")
	fs.BoolVar(&cfg.ProxyDownloads, "aria2c_proxy", false, "aria2c apply proxy")

	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Page request timeout")
	fs.IntVar(&cfg.MaxRedirects, "max-redirects", cfg.MaxRedirects, "Maximum redirects followed for the page request")
	fs.StringVar(&cfg.Downloader, "downloader", cfg.Downloader, "External downloader executable")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFile, "log-file", "", "Also write JSON logs to this file, rotated")
	fs.StringVarP(configFile, "config", "c", "", "JSON config file")
}

// applyFlags copies explicitly set flags over the loaded configuration, so
// flags win over the config file and the environment.
func applyFlags(fs *pflag.FlagSet, dst *config.Config, src config.Config) {
	set := map[string]func(){
		"url":           func() { dst.URL = src.URL },
		"html":          func() { dst.HTML = src.HTML },
		"dir":           func() { dst.Dir = src.Dir },
		"proxy":         func() { dst.Proxy = src.Proxy },
		"user-agent":    func() { dst.UserAgent = src.UserAgent },
		"aria2c_proxy":  func() { dst.ProxyDownloads = src.ProxyDownloads },
		"timeout":       func() { dst.Timeout = src.Timeout },
		"max-redirects": func() { dst.MaxRedirects = src.MaxRedirects },
		"downloader":    func() { dst.Downloader = src.Downloader },
		"log-level":     func() { dst.LogLevel = src.LogLevel },
		"log-file":      func() { dst.LogFile = src.LogFile },
	}
	fs.Visit(func(f *pflag.Flag) {
		if fn, ok := set[f.Name]; ok {
			fn()
		}
	})
}
