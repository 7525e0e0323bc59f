// Package version holds the quickbom version numbers.
package version

// QuickBOMVersion is the current release version, set on release.
const QuickBOMVersion = "1.0.0"

// IntegratorVersion is recorded in the integrator tool entry of every
// unified document.
const IntegratorVersion = "1.0.0"
