// Package memory is an in-process implementation of the engine's stores.
// Awards use xsync's LoadOrStore so concurrent grants of the same pair collapse to one.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/pumppro/rankengine/internal/domain/activity"
	"github.com/pumppro/rankengine/internal/domain/awards"
	"github.com/pumppro/rankengine/internal/domain/badges"
	"github.com/pumppro/rankengine/internal/domain/errs"
	"github.com/pumppro/rankengine/internal/domain/leaderboard"
)

type User struct {
	ID          string
	Username    string
	DisplayName string
	AvatarURL   string
}

type Challenge struct {
	ID        string
	CreatorID string
}

type awardKey struct {
	userID  string
	badgeID string
}

type Store struct {
	mu             sync.RWMutex
	users          map[string]User
	order          []string
	sessions       map[string][]activity.Session
	participations map[string][]activity.Participation
	challenges     map[string]Challenge
	rules          []badges.Rule

	awards *xsync.MapOf[awardKey, awards.Award]

	// failUsers makes per-user reads fail with errs.ErrUnavailable.
	failUsers map[string]bool
}

func New() *Store {
	return &Store{
		users:          make(map[string]User),
		sessions:       make(map[string][]activity.Session),
		participations: make(map[string][]activity.Participation),
		challenges:     make(map[string]Challenge),
		awards:         xsync.NewMapOf[awardKey, awards.Award](),
		failUsers:      make(map[string]bool),
	}
}

func (s *Store) AddUser(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		s.order = append(s.order, u.ID)
	}
	s.users[u.ID] = u
}

func (s *Store) LogSession(userID string, session activity.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = append(s.sessions[userID], session)
}

func (s *Store) CreateChallenge(c Challenge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[c.ID] = c
}

func (s *Store) Join(userID, challengeID string, status activity.ParticipationStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	parts := s.participations[userID]
	for i := range parts {
		if parts[i].ChallengeID == challengeID {
			parts[i].Status = status
			return
		}
	}
	s.participations[userID] = append(parts, activity.Participation{ChallengeID: challengeID, Status: status})
}

// SetRules replaces the badge catalog.
func (s *Store) SetRules(rules []badges.Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = append([]badges.Rule(nil), rules...)
}

// FailReadsFor makes activity reads for userID return errs.ErrUnavailable.
func (s *Store) FailReadsFor(userID string, fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failUsers[userID] = fail
}

func (s *Store) GetUserSessions(ctx context.Context, userID string) ([]activity.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failUsers[userID] {
		return nil, fmt.Errorf("sessions for %s: %w", userID, errs.ErrUnavailable)
	}
	return append([]activity.Session(nil), s.sessions[userID]...), nil
}

func (s *Store) GetUserChallengeParticipations(ctx context.Context, userID string) ([]activity.Participation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failUsers[userID] {
		return nil, fmt.Errorf("participations for %s: %w", userID, errs.ErrUnavailable)
	}
	return append([]activity.Participation(nil), s.participations[userID]...), nil
}

func (s *Store) CountChallengesCreated(ctx context.Context, userID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, c := range s.challenges {
		if c.CreatorID == userID {
			n++
		}
	}
	return n, nil
}

func (s *Store) GetAllUserIDs(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...), nil
}

func (s *Store) UserExists(ctx context.Context, userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[userID]
	return ok, nil
}

func (s *Store) GetAllRules(ctx context.Context) ([]badges.Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]badges.Rule(nil), s.rules...), nil
}

func (s *Store) GetRule(ctx context.Context, badgeID string) (*badges.Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rules {
		if r.ID == badgeID {
			rule := r
			return &rule, nil
		}
	}
	return nil, fmt.Errorf("badge %s: %w", badgeID, errs.ErrNotFound)
}

func (s *Store) InsertIfAbsent(ctx context.Context, award awards.Award) (bool, error) {
	_, loaded := s.awards.LoadOrStore(awardKey{userID: award.UserID, badgeID: award.BadgeID}, award)
	return !loaded, nil
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]awards.Award, error) {
	out := make([]awards.Award, 0)
	s.awards.Range(func(k awardKey, a awards.Award) bool {
		if k.userID == userID {
			out = append(out, a)
		}
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].EarnedAt.Equal(out[j].EarnedAt) {
			return out[i].EarnedAt.After(out[j].EarnedAt)
		}
		return out[i].BadgeID < out[j].BadgeID
	})
	return out, nil
}

func (s *Store) GetProfiles(ctx context.Context, userIDs []string) (map[string]leaderboard.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profiles := make(map[string]leaderboard.Profile, len(userIDs))
	for _, id := range userIDs {
		u, ok := s.users[id]
		if !ok {
			continue
		}
		profiles[id] = leaderboard.Profile{
			UserID:      u.ID,
			Username:    u.Username,
			DisplayName: u.DisplayName,
			AvatarURL:   u.AvatarURL,
		}
	}
	return profiles, nil
}

func (s *Store) BadgeTotals(ctx context.Context) (map[string]leaderboard.BadgeTotal, error) {
	s.mu.RLock()
	points := make(map[string]int64, len(s.rules))
	for _, r := range s.rules {
		points[r.ID] = r.PointValue
	}
	s.mu.RUnlock()

	totals := make(map[string]leaderboard.BadgeTotal)
	s.awards.Range(func(k awardKey, _ awards.Award) bool {
		t := totals[k.userID]
		t.Count++
		t.Points += points[k.badgeID]
		totals[k.userID] = t
		return true
	})
	return totals, nil
}

func (s *Store) ChallengeTotals(ctx context.Context) (map[string]leaderboard.ChallengeTotal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	totals := make(map[string]leaderboard.ChallengeTotal)
	for userID, parts := range s.participations {
		t := totals[userID]
		for _, p := range parts {
			if p.Status == activity.StatusCompleted {
				t.Completed++
			}
		}
		totals[userID] = t
	}
	for _, c := range s.challenges {
		t := totals[c.CreatorID]
		t.Created++
		totals[c.CreatorID] = t
	}
	return totals, nil
}

func (s *Store) SessionTotals(ctx context.Context, window leaderboard.Window) (map[string]leaderboard.SessionTotal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	totals := make(map[string]leaderboard.SessionTotal)
	for userID, sessions := range s.sessions {
		var t leaderboard.SessionTotal
		for _, session := range sessions {
			if !window.Contains(session.Date) {
				continue
			}
			t.Sessions++
			t.Calories += session.CaloriesBurned
		}
		if t.Sessions > 0 {
			totals[userID] = t
		}
	}
	return totals, nil
}

// Awards returns every stored award; used to assert the at-most-once invariant.
func (s *Store) Awards() []awards.Award {
	out := make([]awards.Award, 0, s.awards.Size())
	s.awards.Range(func(_ awardKey, a awards.Award) bool {
		out = append(out, a)
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].UserID != out[j].UserID {
			return out[i].UserID < out[j].UserID
		}
		return out[i].BadgeID < out[j].BadgeID
	})
	return out
}
