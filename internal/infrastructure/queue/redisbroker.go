package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

const promoteBatchSize = 100

// promoteScript moves due members of the delayed set onto their queues in one
// step. Members that do not decode go to the invalid list instead of blocking
// the head of the set.
//
// KEYS[1] delayed set, KEYS[2] invalid list
// ARGV[1] now in ms, ARGV[2] batch size, ARGV[3] queue key prefix
var promoteScript = redis.NewScript(`
local due = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', ARGV[1], 'LIMIT', 0, tonumber(ARGV[2]))
local promoted = 0
for _, member in ipairs(due) do
	redis.call('ZREM', KEYS[1], member)
	local ok, job = pcall(cjson.decode, member)
	if ok and type(job) == 'table' and type(job.key) == 'string' and job.key ~= '' then
		redis.call('LPUSH', ARGV[3] .. ':' .. job.key, member)
		promoted = promoted + 1
	else
		redis.call('LPUSH', KEYS[2], member)
	end
end
return promoted
`)

// RedisBroker stores each queue as a list and parked jobs in a single sorted
// set scored by due time in milliseconds. Jobs are pushed on the left and
// taken from the right. A taken job sits on a processing list named after the
// queue and the consumer until it is acknowledged.
type RedisBroker struct {
	client   *redis.Client
	prefix   string
	rotation atomic.Uint64
}

func NewRedisBroker(client *redis.Client, prefix string) *RedisBroker {
	if prefix == "" {
		prefix = "gympoint:queue"
	}
	return &RedisBroker{
		client: client,
		prefix: prefix,
	}
}

func (b *RedisBroker) listKey(key string) string {
	return b.prefix + ":" + key
}

func (b *RedisBroker) processingKey(key, consumer string) string {
	return b.listKey(key) + ":processing:" + consumer
}

func (b *RedisBroker) delayedKey() string {
	return b.prefix + ":delayed"
}

func (b *RedisBroker) invalidKey() string {
	return b.prefix + ":invalid"
}

func (b *RedisBroker) Push(ctx context.Context, job *Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to encode job: %w", err)
	}

	if err := b.client.LPush(ctx, b.listKey(job.Key), data).Err(); err != nil {
		return fmt.Errorf("failed to push job %s: %w", job.ID, err)
	}
	return nil
}

func (b *RedisBroker) Pop(ctx context.Context, consumer string, keys []string, timeout time.Duration) (*Job, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("no queues to pop from")
	}

	for _, key := range keys {
		data, err := b.client.LMove(ctx, b.listKey(key), b.processingKey(key, consumer), "RIGHT", "LEFT").Result()
		if err == nil {
			return b.claimed(ctx, key, consumer, data)
		}
		if !errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("failed to pop job: %w", err)
		}
	}

	// BLMOVE watches a single list, so the blocking wait rotates over keys.
	key := keys[b.rotation.Add(1)%uint64(len(keys))]
	data, err := b.client.BLMove(ctx, b.listKey(key), b.processingKey(key, consumer), "RIGHT", "LEFT", timeout).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to pop job: %w", err)
	}
	return b.claimed(ctx, key, consumer, data)
}

// claimed decodes a job that was just moved to a processing list. Undecodable
// data is moved to the invalid list so it is not recovered forever.
func (b *RedisBroker) claimed(ctx context.Context, key, consumer, data string) (*Job, error) {
	job, err := decodeJob(data)
	if err == nil {
		return job, nil
	}

	_, txErr := b.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, b.processingKey(key, consumer), 1, data)
		pipe.LPush(ctx, b.invalidKey(), data)
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("%w (and failed to set it aside: %v)", err, txErr)
	}
	return nil, err
}

func (b *RedisBroker) Ack(ctx context.Context, consumer string, job *Job) error {
	if job.raw == "" {
		return fmt.Errorf("job %s was not popped from this broker", job.ID)
	}

	if err := b.client.LRem(ctx, b.processingKey(job.Key, consumer), 1, job.raw).Err(); err != nil {
		return fmt.Errorf("failed to ack job %s: %w", job.ID, err)
	}
	return nil
}

func (b *RedisBroker) Recover(ctx context.Context, worker string, keys []string) (int, error) {
	recovered := 0
	for _, key := range keys {
		pattern := b.processingKey(key, worker) + ":*"
		iter := b.client.Scan(ctx, 0, pattern, 100).Iterator()
		for iter.Next(ctx) {
			moved, err := b.drain(ctx, iter.Val(), b.listKey(key))
			recovered += moved
			if err != nil {
				return recovered, err
			}
		}
		if err := iter.Err(); err != nil {
			return recovered, fmt.Errorf("failed to scan processing lists: %w", err)
		}
	}
	return recovered, nil
}

// drain moves every entry of a processing list back to the consuming end of
// its queue, oldest last so it is taken first.
func (b *RedisBroker) drain(ctx context.Context, processing, queue string) (int, error) {
	moved := 0
	for {
		err := b.client.LMove(ctx, processing, queue, "LEFT", "RIGHT").Err()
		if errors.Is(err, redis.Nil) {
			return moved, nil
		}
		if err != nil {
			return moved, fmt.Errorf("failed to recover job from %s: %w", processing, err)
		}
		moved++
	}
}

func (b *RedisBroker) Schedule(ctx context.Context, job *Job, at time.Time) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to encode job: %w", err)
	}

	member := redis.Z{Score: float64(at.UnixMilli()), Member: data}
	if err := b.client.ZAdd(ctx, b.delayedKey(), member).Err(); err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", job.ID, err)
	}
	return nil
}

func (b *RedisBroker) PromoteDue(ctx context.Context, now time.Time) (int, error) {
	promoted, err := promoteScript.Run(ctx, b.client,
		[]string{b.delayedKey(), b.invalidKey()},
		strconv.FormatInt(now.UnixMilli(), 10),
		promoteBatchSize,
		b.prefix,
	).Int()
	if err != nil {
		return 0, fmt.Errorf("failed to promote delayed jobs: %w", err)
	}
	return promoted, nil
}
