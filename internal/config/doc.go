// Package config provides loading, merging, and validation of the
// bootstrap configuration of the analysis-app binary: which property
// sources to read and how verbosely to log.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file
//  2. Environment variables (ANALYSIS_ prefix)
//  3. Command-line flags
//
// The main entry point is [GetStructuredConfig]. The application settings
// themselves are loaded afterwards by the properties and service packages
// using the [Sources] section of this configuration.
package config
