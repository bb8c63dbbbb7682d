package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/radovskyb/watcher"
	"github.com/spf13/cobra"

	"github.com/inkfold/inkfold"
)

var serverPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site, serve it locally, and rebuild on changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConf()
		if err != nil {
			return err
		}

		if err := buildSite(conf); err != nil {
			return err
		}

		go rebuildOnChange(conf)

		addr := fmt.Sprintf(":%d", serverPort)
		log.Printf("Serving %v on http://localhost%v", conf.OutDir, addr)
		http.Handle("/", http.FileServer(http.Dir(conf.OutDir)))
		return http.ListenAndServe(addr, nil)
	},
}

func rebuildOnChange(conf *inkfold.SiteConf) {
	log.Println("Watching " + conf.ContentDir + " for changes...")

	w := watcher.New()
	w.SetMaxEvents(1)

	go func() {
		for {
			select {
			case <-w.Event:
				if err := buildSite(conf); err != nil {
					log.Println("Rebuild failed:", err)
				}
			case err := <-w.Error:
				log.Println(err)
			case <-w.Closed:
				return
			}
		}
	}()

	for _, dir := range []string{conf.ContentDir, conf.ThemeDir(), conf.StaticDir} {
		if err := w.AddRecursive(dir); err != nil {
			log.Println("Not watching", dir, ":", err)
		}
	}

	if err := w.Start(time.Millisecond * 200); err != nil {
		log.Fatalln(err)
	}
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 1313, "port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
