// Package content holds the landing page sections: their configuration types,
// read-only defaults, YAML overrides and the shallow merge that combines them.
package content
