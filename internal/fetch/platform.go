// Package fetch - platform.go provides platform detection and platform-specific selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known franchise directory platform.
type Platform string

const (
	// PlatformFranchiseDirect is the FranchiseDirect directory
	PlatformFranchiseDirect Platform = "franchisedirect"
	// PlatformFranchiseGator is the Franchise Gator directory
	PlatformFranchiseGator Platform = "franchisegator"
	// PlatformEntrepreneur is the Entrepreneur franchise directory
	PlatformEntrepreneur Platform = "entrepreneur"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the franchise directory platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	if strings.Contains(host, "franchisedirect.com") {
		return PlatformFranchiseDirect
	}

	if strings.Contains(host, "franchisegator.com") {
		return PlatformFranchiseGator
	}

	if strings.Contains(host, "entrepreneur.com") {
		return PlatformEntrepreneur
	}

	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors optimized for a specific platform.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformFranchiseDirect:
		return []string{
			".franchise-profile",
			".profile-description",
			".franchise-info",
			"#content",
		}
	case PlatformFranchiseGator:
		return []string{
			".listing-detail",
			".franchise-details",
			".description-section",
			".content",
		}
	case PlatformEntrepreneur:
		return []string{
			".franchise-overview",
			".company-overview",
			"article",
			"main",
		}
	default:
		return ListingPageSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a specific platform.
func PlatformNoiseSelectors(platform Platform) []string {
	// Common noise selectors for all platforms
	common := []string{
		// Lead capture forms
		"form",
		".lead-form",
		".request-info-form",
		".inquiry-form",
		"[data-testid='lead-form']",

		// Related listings and promos
		".related-franchises",
		".similar-listings",
		".featured-franchises",
		".sponsored",

		// Social and share buttons
		".social-share",
		".share-buttons",
		".social-links",

		// Cookie and GDPR
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",

		// Generic navigation already handled in fetch.go
	}

	switch platform {
	case PlatformFranchiseDirect:
		return append(common,
			".request-information",
			".newsletter-signup",
		)
	case PlatformFranchiseGator:
		return append(common,
			".gator-lead-capture",
			".compare-checkbox",
		)
	case PlatformEntrepreneur:
		return append(common,
			".subscribe-module",
			".newsletter-module",
		)
	default:
		return common
	}
}
