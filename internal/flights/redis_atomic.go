package flights

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SeatMirror keeps a Redis set per flight that shadows the occupied
// seat codes. It gives the booking path a cheap conflict pre-check and
// live seat counts without touching Postgres, which stays
// authoritative: a stale mirror can only cause an early rejection or a
// wasted database round-trip, never a double booking.
type SeatMirror struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewSeatMirror creates a mirror handler. Entries expire after ttl so a
// mirror that misses an invalidation heals itself.
func NewSeatMirror(redisClient *redis.Client, ttl time.Duration) *SeatMirror {
	return &SeatMirror{
		redis: redisClient,
		ttl:   ttl,
	}
}

func mirrorKey(flightID uuid.UUID) string {
	return "flightly:flights:occupied:" + flightID.String()
}

// Lua script for the mirror-side seat reservation. Checking and adding
// must be one atomic step or two concurrent pre-checks could both pass.
const luaMirrorReserve = `
-- KEYS[1] = occupied-set key
-- ARGV[1] = ttl_seconds
-- ARGV[2..N] = seat codes

local key = KEYS[1]
local ttl = tonumber(ARGV[1])

-- Reject if any requested seat is already mirrored as occupied
for i = 2, #ARGV do
    if redis.call("SISMEMBER", key, ARGV[i]) == 1 then
        return {0, ARGV[i]}
    end
end

-- All free on the mirror: add the whole set
for i = 2, #ARGV do
    redis.call("SADD", key, ARGV[i])
end
redis.call("EXPIRE", key, ttl)

return {1, #ARGV - 1}
`

// Lua script for the mirror-side release. SREM of absent members is a
// no-op, so releases stay idempotent.
const luaMirrorRelease = `
-- KEYS[1] = occupied-set key
-- ARGV[1..N] = seat codes

local key = KEYS[1]
local removed = 0

for i = 1, #ARGV do
    removed = removed + redis.call("SREM", key, ARGV[i])
end

return removed
`

// Reserve marks the seats occupied on the mirror, failing fast when one
// is already taken there. A SeatConflictError from here saves a
// Postgres round-trip; a pass is only advisory.
func (m *SeatMirror) Reserve(ctx context.Context, flightID uuid.UUID, seats []string) error {
	if m.redis == nil {
		return fmt.Errorf("redis client not available")
	}
	if len(seats) == 0 {
		return nil
	}

	keys := []string{mirrorKey(flightID)}
	args := make([]interface{}, 0, len(seats)+1)
	args = append(args, int(m.ttl.Seconds()))
	for _, seat := range seats {
		args = append(args, seat)
	}

	result, err := m.redis.EvalSha(ctx, luaMirrorReserve, keys, args...).Result()
	if err != nil {
		result, err = m.redis.Eval(ctx, luaMirrorReserve, keys, args...).Result()
		if err != nil {
			return fmt.Errorf("failed to execute mirror reserve: %w", err)
		}
	}

	resultArray, ok := result.([]interface{})
	if !ok || len(resultArray) != 2 {
		return fmt.Errorf("unexpected result format from mirror reserve script")
	}

	success, ok := resultArray[0].(int64)
	if !ok {
		return fmt.Errorf("invalid success flag in mirror reserve result")
	}

	if success == 0 {
		if conflictSeat, ok := resultArray[1].(string); ok {
			return &SeatConflictError{Seats: []string{conflictSeat}}
		}
		return fmt.Errorf("failed to reserve seats on mirror")
	}

	return nil
}

// Release removes the seats from the mirror.
func (m *SeatMirror) Release(ctx context.Context, flightID uuid.UUID, seats []string) (int, error) {
	if m.redis == nil {
		return 0, fmt.Errorf("redis client not available")
	}
	if len(seats) == 0 {
		return 0, nil
	}

	keys := []string{mirrorKey(flightID)}
	args := make([]interface{}, 0, len(seats))
	for _, seat := range seats {
		args = append(args, seat)
	}

	result, err := m.redis.EvalSha(ctx, luaMirrorRelease, keys, args...).Result()
	if err != nil {
		result, err = m.redis.Eval(ctx, luaMirrorRelease, keys, args...).Result()
		if err != nil {
			return 0, fmt.Errorf("failed to execute mirror release: %w", err)
		}
	}

	removed, ok := result.(int64)
	if !ok {
		return 0, fmt.Errorf("invalid removed count in mirror release result")
	}

	return int(removed), nil
}

// Seed replaces the mirror with the authoritative occupied set, used
// after a cache-healing read from Postgres.
func (m *SeatMirror) Seed(ctx context.Context, flightID uuid.UUID, occupied []string) error {
	if m.redis == nil {
		return fmt.Errorf("redis client not available")
	}

	key := mirrorKey(flightID)
	pipe := m.redis.TxPipeline()
	pipe.Del(ctx, key)
	if len(occupied) > 0 {
		members := make([]interface{}, len(occupied))
		for i, seat := range occupied {
			members[i] = seat
		}
		pipe.SAdd(ctx, key, members...)
	}
	pipe.Expire(ctx, key, m.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to seed seat mirror: %w", err)
	}
	return nil
}

// OccupiedCount returns the number of mirrored occupied seats.
func (m *SeatMirror) OccupiedCount(ctx context.Context, flightID uuid.UUID) (int, error) {
	if m.redis == nil {
		return 0, fmt.Errorf("redis client not available")
	}

	count, err := m.redis.SCard(ctx, mirrorKey(flightID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count mirrored seats: %w", err)
	}
	return int(count), nil
}

// PreloadScripts loads the Lua scripts into Redis so the EVALSHA fast
// path hits on first use.
func (m *SeatMirror) PreloadScripts(ctx context.Context) error {
	if m.redis == nil {
		return fmt.Errorf("redis client not available")
	}

	if _, err := m.redis.ScriptLoad(ctx, luaMirrorReserve).Result(); err != nil {
		return fmt.Errorf("failed to load mirror reserve script: %w", err)
	}
	if _, err := m.redis.ScriptLoad(ctx, luaMirrorRelease).Result(); err != nil {
		return fmt.Errorf("failed to load mirror release script: %w", err)
	}
	return nil
}
