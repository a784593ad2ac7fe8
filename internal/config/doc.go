// Package config provides configuration management for greetcard.
//
// There is no configuration file. Every constant the greeter needs has a
// default in DefaultSettings, and Load overlays GREETCARD_* environment
// variables on top of them:
//
//	settings, err := config.Load()
//	if err != nil {
//	    // a variable was set to an unusable value
//	}
//
// # Configuration Options
//
//   - GREETCARD_IMAGE_WIDTH: renderer column width (40)
//   - GREETCARD_DEFAULT_IMAGE: fallback image path
//   - GREETCARD_RENDERER, GREETCARD_CLOCK, GREETCARD_QUOTE: command names
//   - GREETCARD_ART_PREFIX: cache path prefix ("/tmp/album-")
//   - GREETCARD_ART_MAX_SIZE: longest side of normalized art, in pixels
//   - GREETCARD_DOWNLOADER: download command ("wget") or "builtin"
//   - GREETCARD_DEBUG: log skipped sources to stderr
package config
