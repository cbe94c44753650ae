// Package config loads optional TOML configuration for recipeflow hosts:
// logging preferences, subscription buffering and seed recipes. A missing
// file yields defaults rather than an error so embedding applications work
// with zero setup.
package config
