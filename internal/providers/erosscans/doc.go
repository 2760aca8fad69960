// Package erosscans implements providers.Scraper for erosscans.xyz, a
// MangaReader-themed WordPress site. Every operation fetches one page
// through the injected executor and maps it with fixed CSS selectors.
package erosscans
