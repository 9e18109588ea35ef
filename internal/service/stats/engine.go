package stats

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/ougirez/lwc/internal/domain"
	"github.com/ougirez/lwc/internal/pkg/constants"
	"github.com/ougirez/lwc/internal/pkg/logger"
	"github.com/ougirez/lwc/internal/pkg/store"
)

// Demo values used when nothing has been stored yet.
const (
	seedToday = 3421
	seedMonth = 45020
	seedYear  = 1254892

	onlineSeedMin  = 100
	onlineSeedMax  = 150
	onlineFloor    = 50
	maxOnlineDelta = 3

	DefaultOnlineInterval = 3 * time.Second
	DefaultVisitInterval  = 5 * time.Second
)

// Engine simulates visitor traffic: an online gauge that drifts and three
// date-bucketed visit counters that are persisted on every increment.
type Engine struct {
	kv             store.Store
	now            func() time.Time
	loc            *time.Location
	rnd            *rand.Rand
	onlineInterval time.Duration
	visitInterval  time.Duration

	mu    sync.Mutex
	stats domain.VisitorStatistics
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithLocation(loc *time.Location) Option {
	return func(e *Engine) { e.loc = loc }
}

func WithRand(rnd *rand.Rand) Option {
	return func(e *Engine) { e.rnd = rnd }
}

func WithIntervals(online, visit time.Duration) Option {
	return func(e *Engine) {
		e.onlineInterval = online
		e.visitInterval = visit
	}
}

func NewEngine(kv store.Store, opts ...Option) *Engine {
	e := &Engine{
		kv:             kv,
		now:            time.Now,
		loc:            time.UTC,
		rnd:            rand.New(rand.NewSource(time.Now().UnixNano())),
		onlineInterval: DefaultOnlineInterval,
		visitInterval:  DefaultVisitInterval,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load initialises the counters from storage. Without stored stats the demo
// seed is used as is; with stored stats each bucket whose stored key is not
// the current one starts again from zero. Online is always re-seeded.
func (e *Engine) Load(ctx context.Context) domain.VisitorStatistics {
	e.mu.Lock()
	defer e.mu.Unlock()

	keys := KeysAt(e.now(), e.loc)
	current := domain.VisitorStatistics{
		Online:    onlineSeedMin + e.rnd.Intn(onlineSeedMax-onlineSeedMin+1),
		Today:     seedToday,
		Month:     seedMonth,
		Year:      seedYear,
		LastDate:  keys.Day,
		LastMonth: keys.Month,
		LastYear:  keys.Year,
	}

	if stored, ok := e.readStored(ctx, current); ok {
		online := current.Online
		current = reconcile(stored.overlaid, stored.keys, keys)
		current.Online = online
	}

	if raw, err := e.kv.Get(ctx, constants.StorageKeyDate); err == nil {
		logger.Debugf(ctx, "stats: ignoring legacy %s=%s", constants.StorageKeyDate, string(raw))
	}

	e.stats = current
	return current
}

type storedStats struct {
	overlaid domain.VisitorStatistics
	keys     Keys
}

func (e *Engine) readStored(ctx context.Context, defaults domain.VisitorStatistics) (storedStats, bool) {
	raw, err := e.kv.Get(ctx, constants.StorageKeyStats)
	if err != nil {
		if !errors.Is(err, constants.ErrDBNotFound) {
			logger.Warnf(ctx, "stats: read %s: %s", constants.StorageKeyStats, err.Error())
		}
		return storedStats{}, false
	}

	var asStored domain.VisitorStatistics
	overlaid := defaults
	if err := store.Decode(raw, &asStored); err != nil {
		logger.Warnf(ctx, "stats: decode %s: %s", constants.StorageKeyStats, err.Error())
		return storedStats{}, false
	}
	if err := store.Decode(raw, &overlaid); err != nil {
		return storedStats{}, false
	}

	return storedStats{
		overlaid: overlaid,
		keys:     Keys{Day: asStored.LastDate, Month: asStored.LastMonth, Year: asStored.LastYear},
	}, true
}

func reconcile(s domain.VisitorStatistics, stored, now Keys) domain.VisitorStatistics {
	day := ReconcileBucket(Counter{Value: s.Today, Key: stored.Day}, now.Day)
	month := ReconcileBucket(Counter{Value: s.Month, Key: stored.Month}, now.Month)
	year := ReconcileBucket(Counter{Value: s.Year, Key: stored.Year}, now.Year)

	s.Today, s.LastDate = day.Value, day.Key
	s.Month, s.LastMonth = month.Value, month.Key
	s.Year, s.LastYear = year.Value, year.Key
	return s
}

func (e *Engine) Snapshot() domain.VisitorStatistics {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

// TickOnline moves the online gauge by a random step in [-3, 3], never below 50.
func (e *Engine) TickOnline() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	delta := e.rnd.Intn(2*maxOnlineDelta+1) - maxOnlineDelta
	e.stats.Online = max(onlineFloor, e.stats.Online+delta)
	return e.stats.Online
}

// RecordVisit counts one visit in every bucket and persists the result.
// Buckets are rolled over first, so a running engine resets at midnight.
func (e *Engine) RecordVisit(ctx context.Context) (domain.VisitorStatistics, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	current := Keys{Day: e.stats.LastDate, Month: e.stats.LastMonth, Year: e.stats.LastYear}
	e.stats = reconcile(e.stats, current, KeysAt(e.now(), e.loc))

	e.stats.Today++
	e.stats.Month++
	e.stats.Year++

	snapshot := e.stats
	if err := store.PutJSON(ctx, e.kv, constants.StorageKeyStats, snapshot); err != nil {
		return snapshot, fmt.Errorf("persist stats: %w", err)
	}

	return snapshot, nil
}

// Session owns the two simulation tickers started by Engine.Start.
type Session struct {
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Start runs the online gauge and the visit counter until Stop is called or
// ctx is done.
func (e *Engine) Start(ctx context.Context) *Session {
	ctx, cancel := context.WithCancel(ctx)
	s := &Session{cancel: cancel}

	s.wg.Add(2)
	go e.every(ctx, &s.wg, e.onlineInterval, func(context.Context) {
		e.TickOnline()
	})
	go e.every(ctx, &s.wg, e.visitInterval, func(ctx context.Context) {
		if _, err := e.RecordVisit(ctx); err != nil {
			logger.Errorf(ctx, "stats: %s", err.Error())
		}
	})

	return s
}

// Stop cancels both tickers and waits for them to return. It is safe to call twice.
func (s *Session) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (e *Engine) every(ctx context.Context, wg *sync.WaitGroup, interval time.Duration, fn func(context.Context)) {
	defer wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(ctx)
		}
	}
}
