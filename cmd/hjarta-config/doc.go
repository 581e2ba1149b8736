// Hjarta-config inspects the provider configuration of an application.
//
// It discovers provider identifiers from a package manifest, resolves them
// against the registered providers and "file:" fragments, and prints the
// aggregated result.
//
// Usage:
//
//	hjarta-config list                         # show discovered identifiers
//	hjarta-config dump                         # print the merged configuration as YAML
//	hjarta-config dump --manifest vendor.lock  # read another manifest
//	hjarta-config version
package main
