package leaderboard

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

type cachedProfile struct {
	profile   Profile
	timestamp time.Time
}

// ProfileCache keeps display fields for leaderboard rows. Scores are never cached.
type ProfileCache struct {
	source ProfileSource
	cache  *lru.Cache
	ttl    time.Duration
	now    func() time.Time
}

// NewProfileCache wraps source with an LRU of the given size. A size or ttl of
// zero disables caching.
func NewProfileCache(source ProfileSource, size int, ttl time.Duration) (*ProfileCache, error) {
	pc := &ProfileCache{
		source: source,
		ttl:    ttl,
		now:    time.Now,
	}
	if size <= 0 || ttl <= 0 {
		return pc, nil
	}

	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile cache: %w", err)
	}
	pc.cache = cache
	return pc, nil
}

func (pc *ProfileCache) GetProfiles(ctx context.Context, userIDs []string) (map[string]Profile, error) {
	profiles := make(map[string]Profile, len(userIDs))
	if pc.cache == nil {
		return pc.fetch(ctx, userIDs, profiles)
	}

	missing := make([]string, 0)
	now := pc.now()
	for _, id := range userIDs {
		if v, ok := pc.cache.Get(id); ok {
			cached := v.(cachedProfile)
			if now.Sub(cached.timestamp) < pc.ttl {
				profiles[id] = cached.profile
				continue
			}
			pc.cache.Remove(id)
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return profiles, nil
	}

	return pc.fetch(ctx, missing, profiles)
}

func (pc *ProfileCache) fetch(ctx context.Context, ids []string, into map[string]Profile) (map[string]Profile, error) {
	if len(ids) == 0 {
		return into, nil
	}

	fetched, err := pc.source.GetProfiles(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}

	now := pc.now()
	for id, p := range fetched {
		into[id] = p
		if pc.cache != nil {
			pc.cache.Add(id, cachedProfile{profile: p, timestamp: now})
		}
	}
	return into, nil
}

// Purge drops every cached profile.
func (pc *ProfileCache) Purge() {
	if pc.cache != nil {
		pc.cache.Purge()
	}
}
