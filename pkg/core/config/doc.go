// Package config loads tool configuration for the truckdef CLI.
//
// Package: config
// Title: CLI Configuration Loading
// Description: Implements loading of the optional truckdef.toml configuration
//              file. The configuration controls log verbosity/format and the
//              resource roots searched by the texture-existence check used by
//              the managedmaterials directive. A missing configuration file is
//              not an error; built-in defaults apply.
package config
