package sessions

import (
	"context"

	"github.com/jrsteele09/go-backoffice/internal/errors"
	"github.com/rs/zerolog/log"
)

// scheduleRefresh starts a detached profile refresh for the session identified by epoch.
// It never blocks and never fails the session.
func (s *Store) scheduleRefresh(epoch uint64, token, hotelID string) {
	if s.source == nil || hotelID == "" {
		return
	}

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.refresh(epoch, token, hotelID)
	}()
}

func (s *Store) refresh(epoch uint64, token, hotelID string) {
	logger := log.With().Str("hotel_id", hotelID).Logger()

	fields, err := s.fetchProfile(token, hotelID)
	if err != nil {
		logger.Debug().Err(err).Msg("Profile refresh failed")
		return
	}

	s.lock.Lock()
	if s.epoch != epoch || !s.state.IsAuthenticated() || s.state.Token != token {
		s.lock.Unlock()
		logger.Debug().Msg("Profile refresh discarded: session changed")
		return
	}
	// An empty profile is cached too, so later hydrations know the token is fresh
	if s.cache != nil {
		if err := s.cache.Upsert(token, fields); err != nil {
			logger.Debug().Err(err).Msg("Profile refresh not cached")
		}
	}
	if s.closed || len(fields) == 0 {
		s.lock.Unlock()
		return
	}
	s.state.User.Merge(fields)
	st := s.state.clone()
	s.lock.Unlock()

	s.notify(st)
}

// fetchProfile checks the backend health, then loads the profile. Stores sharing a refresh
// group make a single backend round trip per token and hotel at a time.
func (s *Store) fetchProfile(token, hotelID string) (map[string]any, error) {
	fetch := func() (any, error) {
		ctx := context.Background()
		if err := s.source.Health(ctx); err != nil {
			return nil, errors.Wrapf(err, "backend not healthy")
		}
		return s.source.Profile(ctx, token, hotelID)
	}

	var (
		v   any
		err error
	)
	if s.group != nil {
		v, err, _ = s.group.Do(profileKey(token, hotelID), fetch)
	} else {
		v, err = fetch()
	}
	if err != nil {
		return nil, err
	}
	fields, _ := v.(map[string]any)
	return fields, nil
}

func profileKey(token, hotelID string) string {
	return hotelID + "\x00" + token
}
