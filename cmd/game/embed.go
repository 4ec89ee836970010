package main

import "embed"

// configFS holds the shipped tuning.toml and level files
//
//go:embed configs
var configFS embed.FS
