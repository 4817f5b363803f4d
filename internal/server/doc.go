// Package server runs the REST API listener together with the background
// workers and shuts both down on SIGINT, SIGTERM or SIGQUIT.
package server
