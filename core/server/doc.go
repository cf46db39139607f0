// Package server holds the configuration of the HTTP server: listen port,
// API key protection and the verify report cache TTL.
package server
