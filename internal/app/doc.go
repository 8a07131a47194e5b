// Package app contains the core application logic. It defines the main App
// struct, its validated configuration and the run lifecycle (scan, report,
// publish), decoupled from any specific entrypoint like a CLI.
package app
