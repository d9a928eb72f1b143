package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/bloggen/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing files"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	fmt.Println("Initializing site skeleton")

	if err := config.Init(root.Config, i.Force); err != nil {
		return err
	}

	for dir, files := range skeleton() {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
		for name, content := range files {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil && !i.Force {
				fmt.Printf("Skipping existing %s\n", path)
				continue
			}
			if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Printf("Wrote %s\n", path)
		}
	}

	fmt.Println("Initialized successfully")
	return nil
}

// skeleton maps directories to the starter files they receive.
func skeleton() map[string]map[string]string {
	today := time.Now().UTC().Format("2006-01-02")
	return map[string]map[string]string{
		config.DefaultContentDir: {
			today + "-hello-world.md": samplePost,
		},
		config.DefaultTemplatesDir: {
			"post.html":      postTemplate,
			"index.html":     listingTemplate,
			"tag-index.html": listingTemplate,
		},
		filepath.Join(config.DefaultAssetsDir, "css"): {
			"site.css": sampleCSS,
		},
	}
}

const samplePost = `---
title: Hello, World
layout: post
tags:
  - meta
---
Welcome to your new blog. The date of this post comes from the
filename prefix; add a ` + "`date`" + ` field to override it.
`

const postTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Page.Title}}</title>
  <link rel="stylesheet" href="/css/site.css">
  <link rel="alternate" type="application/atom+xml" href="/atom.xml">
</head>
<body>
  <header><a href="/">Home</a></header>
  <main>
    <h1>{{.Page.Title}}</h1>
    <p class="meta">{{formatDateTime .Page.Date "2 January 2006"}}{{if .Page.Tags}} &middot; {{join .Page.Tags}}{{end}}</p>
    {{.Page.BodyHTML}}
  </main>
</body>
</html>
`

const listingTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Page.Title}}</title>
  <link rel="stylesheet" href="/css/site.css">
  <link rel="alternate" type="application/atom+xml" href="/atom.xml">
</head>
<body>
  <header><a href="/">Home</a></header>
  <main>
    <h1>{{.Page.Title}}</h1>
    {{.Page.BodyHTML}}
  </main>
</body>
</html>
`

const sampleCSS = `body {
  max-width: 42rem;
  margin: 2rem auto;
  padding: 0 1rem;
  font-family: system-ui, sans-serif;
  line-height: 1.6;
}

.meta {
  color: #666;
}
`
