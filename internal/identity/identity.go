// Package identity computes the key used to decide whether two components
// from different SBOM documents describe the same package.
package identity

import "github.com/quickbom/quickbom/pkg/models"

// Key returns purl when it is set, and name@version otherwise. Versions are
// compared as opaque strings, so "1.0" and "1.0.0" produce different keys.
func Key(purl, name, version string) string {
	if purl != "" {
		return purl
	}

	return name + "@" + version
}

// ComponentKey is Key applied to a component's identifying fields.
func ComponentKey(c models.Component) string {
	return Key(c.PURL, c.Name, c.Version)
}
