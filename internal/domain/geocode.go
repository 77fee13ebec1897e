package domain

import (
	"context"
	"log/slog"
)

// EnrichWithGeocoding attempts to attach place details to a damage site.
// If geocoder is nil or the lookup fails, the site is returned with
// GeoSource set accordingly (graceful degradation — the fixed table is
// already usable without enrichment).
func EnrichWithGeocoding(ctx context.Context, site DamageSite, geocoder Geocoder, logger *slog.Logger) DamageSite {
	if geocoder == nil {
		return site
	}

	result, err := geocoder.ReverseGeocode(ctx, site.Geo.Lat, site.Geo.Lon)
	if err != nil {
		logger.Warn("reverse geocoding failed",
			"site_id", site.ID,
			"site", site.Name,
			"lat", site.Geo.Lat,
			"lon", site.Geo.Lon,
			"error", err,
		)
		site.GeoSource = "failed"
		return site
	}

	if result.FormattedAddress == "" {
		site.GeoSource = "original"
		return site
	}

	site.FormattedAddress = result.FormattedAddress
	site.PlaceName = result.PlaceName
	site.GeoConfidence = result.Confidence
	site.GeoSource = "reverse"
	return site
}
