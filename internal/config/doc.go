// Package config loads and validates hudtext settings.
//
// Settings are layered, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← HUDTEXT_SECTION_NAME
//	├─────────────────────────────┤
//	│  2. Config File             │  ← TOML or YAML
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Default()
//	└─────────────────────────────┘
//
// The layers are merged as generic maps and then decoded into a Config:
//
//	cfg, err := config.Load("hudtext.toml")
//	if err != nil {
//	    var verr *config.ValidationError
//	    if errors.As(err, &verr) { ... }
//	}
//
// # Sub-packages
//
//   - loader: file and environment sources, DeepMerge
//   - watcher: change notification for live reload
package config
