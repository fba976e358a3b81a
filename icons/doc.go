// Package icons provides a bounded in-memory cache for entry icons.
package icons
