package service

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"tavola/infras/metrics"
	"tavola/infras/otel"
	"tavola/internal/domains/booking/model"
	"tavola/internal/domains/booking/repository"
	"tavola/shared/constant"
	"tavola/shared/logger"
	"tavola/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const idTokenLength = 12

const (
	operationLoad = "load"
	operationSave = "save"
)

// Booking is the session's booking store. Unknown ids are ignored and
// storage failures never reach the caller.
type Booking interface {
	AddBooking(ctx context.Context, draft model.Draft) model.Booking
	UpdateBooking(ctx context.Context, id string, update model.Update)
	CancelBooking(ctx context.Context, id string)
	MarkCompleted(ctx context.Context, id string)
	Bookings(ctx context.Context) []model.Booking
	Get(ctx context.Context, id string) (model.Booking, bool)
	Persistent() bool
}

type Option func(*serviceImpl)

// WithClock replaces the source of createdAt timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *serviceImpl) {
		s.now = now
	}
}

// WithIDGenerator replaces the booking id source. Generated ids that were
// already issued are discarded and drawn again.
func WithIDGenerator(gen func() string) Option {
	return func(s *serviceImpl) {
		s.newID = gen
	}
}

type serviceImpl struct {
	mu         sync.Mutex
	bookings   []model.Booking
	issued     map[string]struct{}
	persistent bool
	// loaded stays false until the durable record has been read. Nothing is
	// saved before that.
	loaded bool

	storage repository.Storage
	metrics *metrics.Metrics
	otel    otel.Otel
	log     zerolog.Logger

	now   func() time.Time
	newID func() string
}

// New builds the store and hydrates it from storage. A failed load leaves
// the store empty and in session-only mode: nothing is saved until a later
// load succeeds and the session changes are merged over the durable record.
func New(storage repository.Storage, m *metrics.Metrics, otl otel.Otel, opts ...Option) Booking {
	s := &serviceImpl{
		issued:     make(map[string]struct{}),
		persistent: true,
		storage:    storage,
		metrics:    m,
		otel:       otl,
		log:        logger.Component(model.EntityName),
		now:        timezone.Now,
		newID:      newID,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.hydrate(context.Background())

	return s
}

func newID() string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")

	return model.IDPrefix + strings.ToUpper(token[:idTokenLength])
}

func (s *serviceImpl) hydrate(ctx context.Context) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hydrate")
	defer scope.End()

	snapshot, err := s.storage.Load(ctx)
	if err != nil {
		scope.TraceError(err)
		s.log.Warn().Err(err).Msg("failed to load bookings, continuing in session-only mode")
		s.metrics.StorageFailures.WithLabelValues(operationLoad).Inc()

		s.bookings = []model.Booking{}
		s.persistent = false

		return
	}

	s.bookings = []model.Booking{}
	s.merge(snapshot.Bookings)
	s.loaded = true

	s.metrics.BookingsHeld.Set(float64(len(s.bookings)))
	s.log.Info().Int("count", len(s.bookings)).Msg("bookings loaded")
}

// merge appends durable bookings behind the session ones and marks their ids
// as issued. A durable booking whose id the session already holds is kept
// out so Get stays unambiguous.
func (s *serviceImpl) merge(durable []model.Booking) {
	for _, b := range durable {
		if _, ok := s.issued[b.ID]; ok {
			s.log.Warn().Str("id", b.ID).Msg("durable booking shadowed by session booking")

			continue
		}

		s.issued[b.ID] = struct{}{}
		s.bookings = append(s.bookings, b)
	}
}

// catchUp retries the initial load before any mutation while the durable
// record is still unread, so ids and bookings written by earlier sessions are
// known before the store changes. It must be called with mu held.
func (s *serviceImpl) catchUp(ctx context.Context) {
	if s.loaded {
		return
	}

	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".catchUp")
	defer scope.End()

	snapshot, err := s.storage.Load(ctx)
	if err != nil {
		scope.TraceError(err)
		s.metrics.StorageFailures.WithLabelValues(operationLoad).Inc()
		s.log.Debug().Err(err).Msg("bookings still unreadable, keeping changes in session")

		return
	}

	s.merge(snapshot.Bookings)
	s.loaded = true
	s.log.Info().Int("count", len(s.bookings)).Msg("booking storage readable again, merged session bookings")
}

func (s *serviceImpl) AddBooking(ctx context.Context, draft model.Draft) model.Booking {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddBooking")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.catchUp(ctx)

	id := s.newID()
	for _, taken := s.issued[id]; taken; _, taken = s.issued[id] {
		id = s.newID()
	}

	s.issued[id] = struct{}{}

	booking := draft.ToBooking(id, s.now().UTC().Round(0))
	s.bookings = slices.Insert(s.bookings, 0, booking)

	scope.SetAttribute("booking.id", id)
	s.metrics.BookingsCreated.Inc()
	s.persist(ctx)

	s.log.Info().Str("id", id).Str("service", string(booking.Service)).Msg("booking created")

	return booking
}

func (s *serviceImpl) UpdateBooking(ctx context.Context, id string, update model.Update) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBooking")
	defer scope.End()

	scope.SetAttribute("booking.id", id)

	if s.modify(ctx, id, update.Apply) {
		s.metrics.BookingsUpdated.Inc()
		s.log.Info().Str("id", id).Msg("booking updated")
	}
}

func (s *serviceImpl) CancelBooking(ctx context.Context, id string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelBooking")
	defer scope.End()

	scope.SetAttribute("booking.id", id)
	s.transition(ctx, id, model.StatusCancelled)
}

func (s *serviceImpl) MarkCompleted(ctx context.Context, id string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkCompleted")
	defer scope.End()

	scope.SetAttribute("booking.id", id)
	s.transition(ctx, id, model.StatusCompleted)
}

// transition overwrites the status whatever it was before, so Completed
// and Cancelled can follow each other.
func (s *serviceImpl) transition(ctx context.Context, id string, status model.Status) {
	changed := s.modify(ctx, id, func(b model.Booking) model.Booking {
		b.Status = status

		return b
	})

	if changed {
		s.metrics.StatusTransitions.WithLabelValues(string(status)).Inc()
		s.log.Info().Str("id", id).Str("status", string(status)).Msg("booking status changed")
	}
}

// modify applies fn to the booking with the given id and persists. It
// reports false without persisting when the id is unknown.
func (s *serviceImpl) modify(ctx context.Context, id string, fn func(model.Booking) model.Booking) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catchUp(ctx)

	idx := slices.IndexFunc(s.bookings, func(b model.Booking) bool { return b.ID == id })
	if idx < 0 {
		s.log.Debug().Str("id", id).Msg("booking not found, ignoring")

		return false
	}

	current := s.bookings[idx]
	next := fn(current)
	next.ID = current.ID
	next.CreatedAt = current.CreatedAt

	s.bookings[idx] = next
	s.persist(ctx)

	return true
}

// persist must be called with mu held.
func (s *serviceImpl) persist(ctx context.Context) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".persist")
	defer scope.End()

	s.metrics.BookingsHeld.Set(float64(len(s.bookings)))

	if !s.loaded {
		scope.AddEvent("skipped: durable record unread")

		return
	}

	scope.SetAttribute("booking.count", len(s.bookings))

	snapshot := model.Snapshot{Bookings: slices.Clone(s.bookings)}

	if err := s.storage.Save(ctx, snapshot); err != nil {
		scope.TraceError(err)
		s.metrics.StorageFailures.WithLabelValues(operationSave).Inc()

		if s.persistent {
			s.log.Warn().Err(err).Msg("failed to save bookings, continuing in session-only mode")
		} else {
			s.log.Debug().Err(err).Msg("failed to save bookings")
		}

		s.persistent = false

		return
	}

	if !s.persistent {
		s.log.Info().Msg("booking storage recovered")
	}

	s.persistent = true
}

func (s *serviceImpl) Bookings(_ context.Context) []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.bookings)
}

func (s *serviceImpl) Get(_ context.Context, id string) (model.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.bookings, func(b model.Booking) bool { return b.ID == id })
	if idx < 0 {
		return model.Booking{}, false
	}

	return s.bookings[idx], true
}

// Persistent reports whether the durable record has been read and the last
// save succeeded.
func (s *serviceImpl) Persistent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.persistent
}
