package sbom

import "github.com/quickbom/quickbom/pkg/models"

// normalizeLicenses keeps every license entry in order. An entry carrying none
// of id, name or expression is recorded with the name "N/A".
func normalizeLicenses(raw []rawLicenseChoice) []models.License {
	licenses := make([]models.License, 0, len(raw))

	for _, choice := range raw {
		var license models.License
		if choice.License != nil {
			license.ID = valueOrEmpty(choice.License.ID)
			license.Name = valueOrEmpty(choice.License.Name)
		}
		license.Expression = valueOrEmpty(choice.Expression)

		if license == (models.License{}) {
			license.Name = models.NotAvailableLicense
		}

		licenses = append(licenses, license)
	}

	return licenses
}
