// Package navigate classifies link targets and dispatches them.
package navigate
