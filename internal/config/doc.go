// Package config provides configuration loading, merging, and validation
// facilities for the server and the client.
//
// Configuration is assembled from multiple sources; for every field the
// first source that sets it wins:
//  1. Command-line flags
//  2. Environment variables (a .env file in the working directory is loaded
//     first without overriding variables already set)
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
