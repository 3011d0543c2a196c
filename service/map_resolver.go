package service

import (
	"context"
	"strings"

	"schnose/models"
)

type mapResolver struct {
	api GlobalAPI
}

// NewMapResolver creates a map resolver. The catalog is fetched on every call.
func NewMapResolver(api GlobalAPI) MapResolver {
	return &mapResolver{api: api}
}

// Resolve returns the first catalog map whose name contains the lowercased
// fragment. Ambiguous fragments resolve to whichever map the API lists first.
func (r *mapResolver) Resolve(ctx context.Context, fragment string) (*models.MapEntry, error) {
	needle := strings.ToLower(strings.TrimSpace(fragment))
	if needle == "" {
		return nil, mapNotFoundError(fragment)
	}

	catalog, err := r.api.Maps(ctx)
	if err != nil {
		return nil, remoteAPIError("GlobalAPI", err)
	}

	for i := range catalog {
		if strings.Contains(catalog[i].Name, needle) {
			entry := catalog[i]
			return &entry, nil
		}
	}

	return nil, mapNotFoundError(fragment)
}
