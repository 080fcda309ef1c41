package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/pumppro/rankengine/internal/domain/errs"
	"github.com/sahilm/fuzzy"
)

var ErrInvalidPeriod = errors.New("invalid leaderboard period")

type Service interface {
	Rank(ctx context.Context, dimension Dimension, filters Filters) (*Page, error)
	UserRank(ctx context.Context, dimension Dimension, userID string, filters Filters) (*Position, error)
}

type Options struct {
	DefaultLimit int
	MaxLimit     int
	Location     *time.Location
}

type Ranker struct {
	source   Source
	profiles ProfileSource
	opts     Options
	now      func() time.Time
}

// NewRanker builds a ranker reading aggregates from source. Display fields are
// read through profiles, which may be nil to read them from source directly.
func NewRanker(source Source, profiles ProfileSource, opts Options) *Ranker {
	if profiles == nil {
		profiles = source
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 50
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = 100
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Ranker{
		source:   source,
		profiles: profiles,
		opts:     opts,
		now:      time.Now,
	}
}

// row carries the secondary key next to the public entry.
type row struct {
	Entry
	tieBreak int64
}

// ranking is a fully ordered population for one dimension.
type ranking struct {
	dimension Dimension
	month     time.Month
	year      int
	rows      []row
}

func (r *Ranker) Rank(ctx context.Context, dimension Dimension, filters Filters) (*Page, error) {
	start := time.Now()

	rk, err := r.compute(ctx, dimension, filters)
	if err != nil {
		return nil, err
	}

	selected := rk.rows
	q := strings.TrimSpace(filters.Query)
	if q != "" {
		if err := r.attachProfiles(ctx, rk.rows); err != nil {
			return nil, err
		}
		selected = matchByName(rk.rows, q)
	}

	limit := r.limit(filters.Limit)
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > len(selected) {
		offset = len(selected)
	}
	end := min(offset+limit, len(selected))
	window := selected[offset:end]

	if q == "" {
		if err := r.attachProfiles(ctx, window); err != nil {
			return nil, err
		}
	}

	page := &Page{
		Dimension:  dimension,
		TotalUsers: len(rk.rows),
		Matched:    len(selected),
		Entries:    make([]Entry, 0, len(window)),
		ComputedAt: r.now().UTC(),
	}
	if dimension == DimensionMonthly {
		page.Month = int(rk.month)
		page.Year = rk.year
	}
	for _, rw := range window {
		page.Entries = append(page.Entries, rw.Entry)
	}

	slog.Debug("Leaderboard computed",
		slog.String("type", "rank"),
		slog.String("dimension", string(dimension)),
		slog.Int("population", page.TotalUsers),
		slog.Int("returned", len(page.Entries)),
		slog.Duration("took", time.Since(start)))

	return page, nil
}

// UserRank locates userID in the full ranking for dimension.
func (r *Ranker) UserRank(ctx context.Context, dimension Dimension, userID string, filters Filters) (*Position, error) {
	rk, err := r.compute(ctx, dimension, filters)
	if err != nil {
		return nil, err
	}

	for i := range rk.rows {
		if rk.rows[i].UserID != userID {
			continue
		}
		if err := r.attachProfiles(ctx, rk.rows[i:i+1]); err != nil {
			return nil, err
		}
		total := len(rk.rows)
		return &Position{
			Entry:      rk.rows[i].Entry,
			Dimension:  dimension,
			TotalUsers: total,
			Percentile: float64(rk.rows[i].Rank) / float64(total) * 100,
		}, nil
	}

	return nil, fmt.Errorf("user %s: %w", userID, errs.ErrNotFound)
}

func (r *Ranker) limit(requested int) int {
	if requested <= 0 {
		return r.opts.DefaultLimit
	}
	if requested > r.opts.MaxLimit {
		return r.opts.MaxLimit
	}
	return requested
}

func (r *Ranker) compute(ctx context.Context, dimension Dimension, filters Filters) (*ranking, error) {
	ids, err := r.source.GetAllUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard population: %w", err)
	}
	ids = uniqueIDs(ids)

	rk := &ranking{dimension: dimension, rows: make([]row, 0, len(ids))}

	switch dimension {
	case DimensionGlobal:
		totals, err := r.source.BadgeTotals(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load badge totals: %w", err)
		}
		for _, id := range ids {
			t := totals[id]
			rk.rows = append(rk.rows, row{
				Entry:    Entry{UserID: id, Score: t.Points, BadgeCount: t.Count},
				tieBreak: t.Count,
			})
		}

	case DimensionChallenge:
		totals, err := r.source.ChallengeTotals(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load challenge totals: %w", err)
		}
		for _, id := range ids {
			t := totals[id]
			rk.rows = append(rk.rows, row{
				Entry:    Entry{UserID: id, Score: t.Completed, ChallengesCompleted: t.Completed, ChallengesCreated: t.Created},
				tieBreak: t.Created,
			})
		}

	case DimensionCalorie:
		totals, err := r.source.SessionTotals(ctx, Window{})
		if err != nil {
			return nil, fmt.Errorf("failed to load session totals: %w", err)
		}
		for _, id := range ids {
			t := totals[id]
			rk.rows = append(rk.rows, row{
				Entry:    Entry{UserID: id, Score: t.Calories, Calories: t.Calories, SessionCount: t.Sessions},
				tieBreak: t.Sessions,
			})
		}

	case DimensionMonthly:
		window, month, year, err := r.monthWindow(filters.Month, filters.Year)
		if err != nil {
			return nil, err
		}
		rk.month, rk.year = month, year

		totals, err := r.source.SessionTotals(ctx, window)
		if err != nil {
			return nil, fmt.Errorf("failed to load monthly session totals: %w", err)
		}
		for _, id := range ids {
			t := totals[id]
			rk.rows = append(rk.rows, row{
				Entry:    Entry{UserID: id, Score: t.Sessions, SessionCount: t.Sessions, Calories: t.Calories},
				tieBreak: t.Calories,
			})
		}

	default:
		return nil, fmt.Errorf("unknown leaderboard dimension %q", dimension)
	}

	sortRows(rk.rows)
	for i := range rk.rows {
		rk.rows[i].Rank = i + 1
	}

	return rk, nil
}

// monthWindow resolves the target month, defaulting to the current one in the ranker's location.
func (r *Ranker) monthWindow(month time.Month, year int) (Window, time.Month, int, error) {
	now := r.now().In(r.opts.Location)
	if month == 0 {
		month = now.Month()
	}
	if year == 0 {
		year = now.Year()
	}
	if month < time.January || month > time.December {
		return Window{}, 0, 0, fmt.Errorf("month %d: %w", month, ErrInvalidPeriod)
	}
	if year < 1 {
		return Window{}, 0, 0, fmt.Errorf("year %d: %w", year, ErrInvalidPeriod)
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, r.opts.Location)
	return Window{From: from, To: from.AddDate(0, 1, 0)}, month, year, nil
}

func (r *Ranker) attachProfiles(ctx context.Context, rows []row) error {
	if len(rows) == 0 {
		return nil
	}

	ids := make([]string, len(rows))
	for i := range rows {
		ids[i] = rows[i].UserID
	}

	profiles, err := r.profiles.GetProfiles(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load leaderboard profiles: %w", err)
	}

	for i := range rows {
		p, ok := profiles[rows[i].UserID]
		if !ok {
			continue
		}
		rows[i].Username = p.Username
		rows[i].DisplayName = p.DisplayName
		rows[i].AvatarURL = p.AvatarURL
	}
	return nil
}

// sortRows orders by score, then tie-break, both descending, then user ID ascending.
// User IDs are unique so the order is total.
func sortRows(rows []row) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.tieBreak != b.tieBreak {
			return a.tieBreak > b.tieBreak
		}
		return a.UserID < b.UserID
	})
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// nameSource exposes ranked rows to fuzzy matching.
type nameSource []row

func (s nameSource) Len() int { return len(s) }

func (s nameSource) String(i int) string {
	return strings.ToLower(s[i].DisplayName + " " + s[i].Username)
}

// matchByName keeps rows whose name fuzzily matches query, in rank order.
func matchByName(rows []row, query string) []row {
	matches := fuzzy.FindFrom(strings.ToLower(query), nameSource(rows))

	idx := make([]int, len(matches))
	for i, m := range matches {
		idx[i] = m.Index
	}
	sort.Ints(idx)

	out := make([]row, len(idx))
	for i, k := range idx {
		out[i] = rows[k]
	}
	return out
}
