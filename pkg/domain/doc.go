// Package domain contains the core domain entities shared across packages.
// The types here describe users as the lookup sees them and carry no
// knowledge of the store they were read from.
package domain
