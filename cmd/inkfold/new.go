package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/spf13/cobra"
)

const frontMatterStub = `---
title: %q
date: %s
draft: true
tags: []
---

`

var newCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Scaffold a new draft post under the content directory",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConf()
		if err != nil {
			return err
		}

		title := strings.Join(args, " ")
		fileSlug, err := slug.Normalize(title)
		if err != nil || fileSlug == "" {
			return fmt.Errorf("cannot derive a file name from %q", title)
		}

		path := filepath.Join(conf.ContentDir, "posts", fileSlug+".md")
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o775); err != nil {
			return err
		}

		stub := fmt.Sprintf(frontMatterStub, title, time.Now().Format(time.RFC3339))
		if err := os.WriteFile(path, []byte(stub), 0o664); err != nil {
			return err
		}

		fmt.Println("Created", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
