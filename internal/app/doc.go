// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the survey run that reads the map, walks
// the slopes and writes the report, decoupled from the CLI entrypoint.
package app
