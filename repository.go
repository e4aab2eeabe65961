package main

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// lookupFunc is one tier of profile resolution. Returns (nil, nil) on a
// clean miss so the chain can move on to the next tier.
type lookupFunc func(ctx context.Context, username string) (*Profile, error)

// ProfileRepository orchestrates profile resolution across the authored
// collection and the published catalog, and keeps the recency ledger.
type ProfileRepository struct {
	store   *ProfileStore
	catalog *CatalogClient
}

// NewProfileRepository wires the repository onto its store and catalog.
func NewProfileRepository(store *ProfileStore, catalog *CatalogClient) *ProfileRepository {
	return &ProfileRepository{store: store, catalog: catalog}
}

// tiers returns the ordered lookup chain: authored profiles first, then
// the published catalog. First hit wins.
func (r *ProfileRepository) tiers() []lookupFunc {
	return []lookupFunc{
		r.store.FindAuthoredProfile,
		r.catalog.FindProfile,
	}
}

// Find resolves a username without touching the recency ledger. Used by
// sub-resources of a card page (the QR image) that should not count as a
// view. A failed catalog fetch surfaces as ErrNotFound to the caller; the
// upstream failure is already logged distinctly by the catalog client.
func (r *ProfileRepository) Find(ctx context.Context, username string) (*Profile, error) {
	var upstreamErr error
	for _, tier := range r.tiers() {
		p, err := tier(ctx, username)
		if err != nil {
			if errors.Is(err, ErrUpstreamFetch) {
				upstreamErr = err
				continue
			}
			return nil, err
		}
		if p != nil {
			return p, nil
		}
	}
	if upstreamErr != nil {
		return nil, errors.Join(ErrNotFound, upstreamErr)
	}
	return nil, ErrNotFound
}

// Lookup resolves a username for display and records the access. Every
// successful lookup appends a "viewed" record, even for profiles this
// instance authored. Recency tracks access, not provenance.
func (r *ProfileRepository) Lookup(ctx context.Context, username string) (*Profile, error) {
	p, err := r.Find(ctx, username)
	if err != nil {
		return nil, err
	}

	rec := RecencyRecord{Username: p.Username, Name: p.Name, Type: RecencyViewed}
	if err := r.store.AppendRecency(ctx, rec); err != nil {
		slog.Warn("recency ledger append failed", "username", p.Username, "error", err)
	}
	return p, nil
}

// Create validates and stores a new authored profile. inlineImage is the
// uploaded image payload ("" when none); it is size-checked before any
// store write, so an oversized upload leaves both the profile collection
// and the image store untouched.
func (r *ProfileRepository) Create(ctx context.Context, p *Profile, inlineImage string) error {
	if strings.TrimSpace(p.Username) == "" {
		return validationError("username")
	}
	if strings.TrimSpace(p.Name) == "" {
		return validationError("name")
	}
	if inlineImage != "" {
		if err := CheckImageSize(inlineImage); err != nil {
			return err
		}
	}

	if err := r.store.SaveProfile(ctx, p); err != nil {
		return err
	}

	if inlineImage != "" {
		if err := r.store.SaveAuxiliaryImage(ctx, p.Username, inlineImage); err != nil {
			slog.Error("auxiliary image write failed", "username", p.Username, "error", err)
			return err
		}
	}

	rec := RecencyRecord{Username: p.Username, Name: p.Name, Type: RecencyCreated}
	if err := r.store.AppendRecency(ctx, rec); err != nil {
		slog.Warn("recency ledger append failed", "username", p.Username, "error", err)
	}

	IncrementCardCreated()
	return nil
}

// Recents builds the home-page recency list: the viewed ledger merged with
// records derived from the authored collection, deduplicated and capped.
func (r *ProfileRepository) Recents(ctx context.Context) ([]RecencyRecord, error) {
	viewed, err := r.store.ListRecency(ctx)
	if err != nil {
		return nil, err
	}

	profiles, err := r.store.ListAuthoredProfiles(ctx)
	if err != nil {
		return nil, err
	}
	authored := make([]RecencyRecord, 0, len(profiles))
	for _, p := range profiles {
		authored = append(authored, RecencyRecord{
			Username: p.Username,
			Name:     p.Name,
			Type:     RecencyCreated,
		})
	}

	return MergeRecents(viewed, authored), nil
}
