package main

import (
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/inkfold/inkfold"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the site into the output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConf()
		if err != nil {
			return err
		}
		return buildSite(conf)
	},
}

func buildSite(conf *inkfold.SiteConf) error {
	site, err := inkfold.ReadSite(conf, time.Now())
	if err != nil {
		return err
	}

	log.Println("Writing site to " + conf.OutDir)
	return site.RenderAll()
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
