// Package services implements the driving ports on top of the driven ports.
//
// Services:
//   - ShopCatalogManager: Prices requests across the catalog and selects the best option
//   - ShopService: Read access to the loaded catalog
//   - SettingsService: Catalog path and service-to-product mapping
package services
