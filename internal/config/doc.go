// Package config defines the format-agnostic model of a build plan, along
// with the Loader interface for reading it from configuration files.
//
// The config.Model is the single source of truth for the app's stage
// materialization. Concrete loaders, such as the HCL one, live in
// separate packages.
package config
