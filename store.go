package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"card-server/internal/kv"
	"card-server/internal/util"
)

// KV namespaces. Authored profiles and the recency ledger are single JSON
// lists; auxiliary images are one value per username.
const (
	profilesKey  = "profiles"
	recentsKey   = "recents"
	auxImageBase = "image:"
)

// maxImageBytes is the ceiling for an uploaded profile image (decoded size).
const maxImageBytes = 2 * 1024 * 1024

// ProfileStore persists authored profiles, auxiliary image blobs, and the
// recency ledger on a key-value backend. The store is exclusively owned by
// the single active instance; the mutex makes the list read-modify-write
// cycles safe for in-process concurrency.
type ProfileStore struct {
	backend kv.Store
	mu      sync.Mutex
}

// NewProfileStore creates a store on the given backend.
func NewProfileStore(backend kv.Store) *ProfileStore {
	return &ProfileStore{backend: backend}
}

func auxImageKey(username string) string {
	return auxImageBase + username
}

// inlineImageSize estimates the decoded byte size of an inline image
// payload. Data URLs carry base64 after the first comma; for anything else
// the raw length is the conservative bound.
func inlineImageSize(payload string) int {
	comma := strings.IndexByte(payload, ',')
	if comma < 0 {
		return len(payload)
	}
	return (len(payload) - comma - 1) / 4 * 3
}

// SaveProfile appends a new authored profile. Fails with
// ErrDuplicateUsername if one with the same username already exists; the
// check and the write happen under the store lock, so no interleaved
// creation of the same username can succeed twice.
func (s *ProfileStore) SaveProfile(ctx context.Context, p *Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.loadProfiles(ctx)
	if err != nil {
		return err
	}
	for _, existing := range profiles {
		if existing.Username == p.Username {
			return fmt.Errorf("%w: %q", ErrDuplicateUsername, p.Username)
		}
	}

	profiles = append(profiles, *p)
	return s.saveProfiles(ctx, profiles)
}

// FindAuthoredProfile returns the authored profile for username, or
// (nil, nil) when none exists.
func (s *ProfileStore) FindAuthoredProfile(ctx context.Context, username string) (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.loadProfiles(ctx)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].Username == username {
			return &profiles[i], nil
		}
	}
	return nil, nil
}

// ListAuthoredProfiles returns all authored profiles, newest first.
func (s *ProfileStore) ListAuthoredProfiles(ctx context.Context) ([]Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.loadProfiles(ctx)
	if err != nil {
		return nil, err
	}
	// Stored oldest-first (append order); callers want most recent first.
	reversed := make([]Profile, len(profiles))
	for i, p := range profiles {
		reversed[len(profiles)-1-i] = p
	}
	return reversed, nil
}

// SaveAuxiliaryImage stores an inline image payload for a username.
// Payloads over the size ceiling are rejected with ErrImageTooLarge before
// anything is written.
func (s *ProfileStore) SaveAuxiliaryImage(ctx context.Context, username, payload string) error {
	if err := CheckImageSize(payload); err != nil {
		return err
	}
	return s.backend.Set(ctx, auxImageKey(username), []byte(payload), 0)
}

// CheckImageSize validates an inline payload against the size ceiling
// without writing anything.
func CheckImageSize(payload string) error {
	if size := inlineImageSize(payload); size > maxImageBytes {
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrImageTooLarge, size, maxImageBytes)
	}
	return nil
}

// GetAuxiliaryImage returns the stored inline payload for a username.
func (s *ProfileStore) GetAuxiliaryImage(ctx context.Context, username string) (string, bool) {
	data, found, err := s.backend.Get(ctx, auxImageKey(username))
	if err != nil || !found {
		return "", false
	}
	return string(data), true
}

// AppendRecency records activity for a username at the front of the
// ledger. Any earlier record for the same username is removed first, so the
// ledger holds at most one record per username, most recent first, capped
// at recencyStoreCap (oldest evicted).
func (s *ProfileStore) AppendRecency(ctx context.Context, rec RecencyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadRecency(ctx)
	if err != nil {
		return err
	}

	records = util.FilterSlice(records, func(r RecencyRecord) bool {
		return r.Username != rec.Username
	})
	records = append([]RecencyRecord{rec}, records...)
	records = util.LimitSlice(records, recencyStoreCap)

	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.backend.Set(ctx, recentsKey, data, 0)
}

// ListRecency returns the ledger, most recent first.
func (s *ProfileStore) ListRecency(ctx context.Context) ([]RecencyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadRecency(ctx)
}

func (s *ProfileStore) loadProfiles(ctx context.Context) ([]Profile, error) {
	data, found, err := s.backend.Get(ctx, profilesKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var profiles []Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("corrupt profile collection: %w", err)
	}
	return profiles, nil
}

func (s *ProfileStore) saveProfiles(ctx context.Context, profiles []Profile) error {
	data, err := json.Marshal(profiles)
	if err != nil {
		return err
	}
	return s.backend.Set(ctx, profilesKey, data, 0)
}

func (s *ProfileStore) loadRecency(ctx context.Context) ([]RecencyRecord, error) {
	data, found, err := s.backend.Get(ctx, recentsKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var records []RecencyRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("corrupt recency ledger: %w", err)
	}
	return records, nil
}
