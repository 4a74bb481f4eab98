// Package config manages user-level settings stored at ~/.fvmctl/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the fvm binary path, the listing mode, and the editor used to open projects.
package config
