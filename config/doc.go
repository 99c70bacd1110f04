// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// When no file is present the Halifax Transit defaults are used, so the
// assistant runs out of the box; switching to another transit system means
// pointing the feed URLs and static archive at that provider's data.
package config
