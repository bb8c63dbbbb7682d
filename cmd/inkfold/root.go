package main

import (
	"github.com/spf13/cobra"

	"github.com/inkfold/inkfold"
)

var (
	cfgFile string

	includeDrafts  bool
	includeFuture  bool
	includeExpired bool
)

var rootCmd = &cobra.Command{
	Use:   "inkfold",
	Short: "inkfold is a static blog generator",
	Long: `inkfold reads Markdown content with front-matter plus a YAML site
configuration and generates a static HTML site with feeds, a sitemap, and a
JSON search index.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "path to the site configuration file")
	rootCmd.PersistentFlags().BoolVarP(&includeDrafts, "drafts", "D", false, "include content marked as draft")
	rootCmd.PersistentFlags().BoolVarP(&includeFuture, "future", "F", false, "include content with a future publish date")
	rootCmd.PersistentFlags().BoolVarP(&includeExpired, "expired", "E", false, "include expired content")
}

// loadConf reads the site configuration and applies the build override
// flags on top of it.
func loadConf() (*inkfold.SiteConf, error) {
	conf, err := inkfold.LoadConf(cfgFile)
	if err != nil {
		return nil, err
	}

	if includeDrafts {
		conf.BuildDrafts = true
	}
	if includeFuture {
		conf.BuildFuture = true
	}
	if includeExpired {
		conf.BuildExpired = true
	}
	return conf, nil
}
