package kzapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"schnose/models"

	"github.com/go-resty/resty/v2"
)

// DefaultKZGOURL is the public KZ:GO API base
const DefaultKZGOURL = "https://kzgo.eu/api/"

// KZGO fetches map metadata (mappers, bonus count, tier) from KZ:GO
type KZGO struct {
	requester
}

// NewKZGO creates a KZ:GO client. observer may be nil.
func NewKZGO(baseURL string, timeout time.Duration, observer Observer) *KZGO {
	return &KZGO{requester: newRequester("kzgo", baseURL, timeout, observer)}
}

// MapDetails returns the metadata for mapName
func (c *KZGO) MapDetails(ctx context.Context, mapName string) (*models.MapDetails, error) {
	var details models.MapDetails
	err := c.get(ctx, "map", "maps/{map_name}", &details, func(r *resty.Request) {
		r.SetPathParam("map_name", mapName)
	})
	if err != nil {
		return nil, err
	}

	if details.Name == "" {
		return nil, fmt.Errorf("map details for %s: %w", mapName, ErrMalformedPayload)
	}
	return &details, nil
}

// MapURL links to the KZ:GO page of a map
func MapURL(mapName string) string {
	return "https://kzgo.eu/maps/" + mapName
}

// PlayerURL links to the KZ:GO page of a player in mode
func PlayerURL(steamID string, mode models.Mode) string {
	return "https://kzgo.eu/players/" + steamID + "?" + strings.ToLower(mode.Short()) + "="
}

// LeaderboardURL links to the KZ:GO world record leaderboard of mode
func LeaderboardURL(mode models.Mode) string {
	return "https://kzgo.eu/leaderboards?" + strings.ToLower(mode.Short()) + "="
}

// MapThumbnailURL is the community screenshot of a map
func MapThumbnailURL(mapName string) string {
	return "https://raw.githubusercontent.com/KZGlobalTeam/map-images/master/images/" + mapName + ".jpg"
}

// WorkshopURL links to the Steam workshop page of a map
func WorkshopURL(workshopID string) string {
	return "https://steamcommunity.com/sharedfiles/filedetails/?id=" + workshopID
}
