// Package manager is the reservation engine: it owns the Postgres pool,
// translates storage errors into the domain error taxonomy, and exposes
// the eight operations the rpc facade dispatches to.
package manager

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/shiva/reservation/config"
	"github.com/shiva/reservation/internal/model"
	"github.com/shiva/reservation/internal/pager"
	"github.com/shiva/reservation/pkg/cache"
	"github.com/shiva/reservation/pkg/db"
)

// eventsChannel is the Redis Pub/Sub channel every mutating operation
// publishes to and Listen subscribes to.
const eventsChannel = "rsvp:events"

// queryChannelCap is the buffer size of the channel Query streams onto —
// large enough to absorb a slow consumer without stalling the cursor for
// more than a page or two of rows.
const queryChannelCap = 128

// getCacheTTL is how long a Get result is cached in Redis before Postgres
// is consulted again on an otherwise-idle key.
const getCacheTTL = 5 * time.Second

// Manager is the ReservationManager: the sole owner of the Postgres pool
// and (optionally) a Redis client used for the get-by-id cache and the
// listen change feed.
type Manager struct {
	pool  *pgxpool.Pool
	redis *redis.Client
}

// New wraps an already-constructed pool and Redis client. redisClient may
// be nil — the cache and Listen are both best-effort and degrade to "no
// cache"/"no events" when Redis isn't available.
func New(pool *pgxpool.Pool, redisClient *redis.Client) *Manager {
	return &Manager{pool: pool, redis: redisClient}
}

// FromConfig builds the pool and Redis client the way cmd/reservation-server
// does at startup, for callers (tests, tools) that just want a ready Manager.
func FromConfig(ctx context.Context, cfg *config.Config) (*Manager, error) {
	pool, err := db.NewPostgresPool(ctx, cfg.Db)
	if err != nil {
		return nil, fmt.Errorf("manager: %w", err)
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Printf("[manager] redis unavailable, listen/cache disabled: %v", err)
		redisClient = nil
	}

	return New(pool, redisClient), nil
}

// Result is a streamed item from Query or Listen: exactly one of Value or
// Err is set, mirroring the source's `Result<Reservation, Error>` channel.
type Result struct {
	Value *model.Reservation
	Err   *model.Error
}

// Reserve inserts a new reservation. The caller's Status is honored if set
// (e.g. to pre-confirm a hold), otherwise it defaults to Pending.
func (m *Manager) Reserve(ctx context.Context, r *model.Reservation) (*model.Reservation, *model.Error) {
	if verr := r.Validate(); verr != nil {
		return nil, verr
	}
	if r.Status == model.Unknown {
		r.Status = model.Pending
	}

	row := m.pool.QueryRow(ctx, sqlReserve, r.UserID, r.ResourceID, r.Start, r.End, r.Note, r.Status.String())
	saved, err := scanReservation(row)
	if err != nil {
		return nil, classifyError(err)
	}

	m.publish(ctx, saved)
	return saved, nil
}

// Confirm moves a reservation from Pending to Confirmed; any other status
// is left unchanged, matching the source's CASE-based UPDATE.
func (m *Manager) Confirm(ctx context.Context, id int64) (*model.Reservation, *model.Error) {
	if verr := model.ValidateReservationID(id); verr != nil {
		return nil, verr
	}
	return m.mutate(ctx, sqlConfirm, id)
}

// UpdateNote replaces a reservation's note without touching its status.
func (m *Manager) UpdateNote(ctx context.Context, id int64, note string) (*model.Reservation, *model.Error) {
	if verr := model.ValidateReservationID(id); verr != nil {
		return nil, verr
	}
	row := m.pool.QueryRow(ctx, sqlUpdateNote, id, note)
	saved, err := scanReservation(row)
	if err != nil {
		return nil, classifyError(err)
	}
	m.invalidateGetCache(ctx, id)
	m.publish(ctx, saved)
	return saved, nil
}

// Cancel deletes a reservation and returns the row as it existed just
// before deletion.
func (m *Manager) Cancel(ctx context.Context, id int64) (*model.Reservation, *model.Error) {
	if verr := model.ValidateReservationID(id); verr != nil {
		return nil, verr
	}
	return m.mutate(ctx, sqlCancel, id)
}

func (m *Manager) mutate(ctx context.Context, sql string, id int64) (*model.Reservation, *model.Error) {
	row := m.pool.QueryRow(ctx, sql, id)
	saved, err := scanReservation(row)
	if err != nil {
		return nil, classifyError(err)
	}
	m.invalidateGetCache(ctx, id)
	m.publish(ctx, saved)
	return saved, nil
}

// Get fetches a single reservation by id, served out of the Redis cache
// when available and populated.
func (m *Manager) Get(ctx context.Context, id int64) (*model.Reservation, *model.Error) {
	if verr := model.ValidateReservationID(id); verr != nil {
		return nil, verr
	}
	if m.redis != nil {
		if cached, ok := m.getCached(ctx, id); ok {
			return cached, nil
		}
	}

	row := m.pool.QueryRow(ctx, sqlGet, id)
	r, err := scanReservation(row)
	if err != nil {
		return nil, classifyError(err)
	}

	m.setCached(ctx, r)
	return r, nil
}

func (m *Manager) getCacheKey(id int64) string {
	return fmt.Sprintf("rsvp:get:%d", id)
}

func (m *Manager) getCached(ctx context.Context, id int64) (*model.Reservation, bool) {
	raw, err := m.redis.Get(ctx, m.getCacheKey(id)).Result()
	if err != nil {
		return nil, false
	}
	var r model.Reservation
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return nil, false
	}
	return &r, true
}

func (m *Manager) setCached(ctx context.Context, r *model.Reservation) {
	if m.redis == nil {
		return
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return
	}
	if err := m.redis.Set(ctx, m.getCacheKey(r.ID), raw, getCacheTTL).Err(); err != nil {
		log.Printf("[manager] cache set failed for reservation %d: %v", r.ID, err)
	}
}

func (m *Manager) invalidateGetCache(ctx context.Context, id int64) {
	if m.redis == nil {
		return
	}
	if err := m.redis.Del(ctx, m.getCacheKey(id)).Err(); err != nil {
		log.Printf("[manager] cache invalidate failed for reservation %d: %v", id, err)
	}
}

// publish best-effort-publishes a change event for Listen subscribers. A
// publish failure never fails the triggering operation — the feed is
// explicitly lossy.
func (m *Manager) publish(ctx context.Context, r *model.Reservation) {
	if m.redis == nil {
		return
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return
	}
	if err := m.redis.Publish(ctx, eventsChannel, raw).Err(); err != nil {
		log.Printf("[manager] event publish failed for reservation %d: %v", r.ID, err)
	}
}

// Query streams every reservation matching q whose timespan is contained
// in [q.Start, q.End), in id order, onto a bounded channel. A producer
// goroutine owns the pgx.Rows cursor and exits (closing the channel) when
// rows are exhausted, ctx is cancelled, or the consumer stops draining and
// the send blocks past ctx's lifetime.
func (m *Manager) Query(ctx context.Context, q *model.ReservationQuery) (<-chan Result, *model.Error) {
	if verr := q.Validate(); verr != nil {
		return nil, verr
	}

	direction := "ASC"
	if q.Desc {
		direction = "DESC"
	}
	sql := fmt.Sprintf(sqlQuery, direction)

	status := ""
	if q.Status != model.Unknown {
		status = q.Status.String()
	}

	rows, err := m.pool.Query(ctx, sql, q.UserID, q.ResourceID, status, q.Start, q.End)
	if err != nil {
		return nil, classifyError(err)
	}

	out := make(chan Result, queryChannelCap)
	go func() {
		defer close(out)
		defer rows.Close()
		for rows.Next() {
			r, scanErr := scanReservation(rows)
			var item Result
			if scanErr != nil {
				item = Result{Err: classifyError(scanErr)}
			} else {
				item = Result{Value: r}
			}
			select {
			case out <- item:
			case <-ctx.Done():
				return
			}
		}
		if err := rows.Err(); err != nil {
			select {
			case out <- Result{Err: classifyError(err)}:
			case <-ctx.Done():
			}
		}
	}()

	return out, nil
}

// Filter returns one cursor-paginated, id-ordered page of reservations
// scoped to a single status, plus pager.Info describing neighboring pages.
func (m *Manager) Filter(ctx context.Context, f *model.ReservationFilter) ([]*model.Reservation, pager.Info, *model.Error) {
	f.Normalize()
	if verr := f.Validate(); verr != nil {
		return nil, pager.Info{}, verr
	}

	rows, err := m.pool.Query(ctx, f.ToSQL())
	if err != nil {
		return nil, pager.Info{}, classifyError(err)
	}
	defer rows.Close()

	var all []*model.Reservation
	for rows.Next() {
		r, scanErr := scanReservation(rows)
		if scanErr != nil {
			return nil, pager.Info{}, classifyError(scanErr)
		}
		all = append(all, r)
	}
	if err := rows.Err(); err != nil {
		return nil, pager.Info{}, classifyError(err)
	}

	page, info := pager.Page(all, f.PageSize, f.CursorSet, f.GetCursor())
	return page, info, nil
}

// Listen subscribes to the change-event feed and streams every reservation
// published by Reserve/Confirm/UpdateNote/Cancel from this point forward.
// This is a best-effort, lossy feed: events published while no subscriber
// is connected are never replayed, and Listen returns an error immediately
// if no Redis client was configured.
func (m *Manager) Listen(ctx context.Context) (<-chan Result, *model.Error) {
	if m.redis == nil {
		return nil, model.WrapDbError(fmt.Errorf("listen: no redis client configured"))
	}

	sub := m.redis.Subscribe(ctx, eventsChannel)
	ch := sub.Channel()

	out := make(chan Result, queryChannelCap)
	go func() {
		defer close(out)
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var r model.Reservation
				var item Result
				if err := json.Unmarshal([]byte(msg.Payload), &r); err != nil {
					item = Result{Err: model.WrapDbError(err)}
				} else {
					item = Result{Value: &r}
				}
				select {
				case out <- item:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
