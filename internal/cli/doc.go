// Package cli implements the hjarta-config command line.
package cli
