package main

import (
	"context"

	"github.com/cockroachdb/errors"
	rsredsync "github.com/go-redsync/redsync/v4"
	rsredis "github.com/go-redsync/redsync/v4/redis"
	rsgoredis "github.com/go-redsync/redsync/v4/redis/goredis/v9"
	redigoredis "github.com/gomodule/redigo/redis"
	"github.com/pwnedgod/hexa/adapter"
	"github.com/pwnedgod/hexa/adapter/goredis"
	"github.com/pwnedgod/hexa/adapter/memory"
	"github.com/pwnedgod/hexa/adapter/redigo"
	"github.com/pwnedgod/hexa/adapter/util/mutex/redislock"
	"github.com/pwnedgod/hexa/adapter/util/mutex/redsync"
	"github.com/pwnedgod/hexa/codec"
	"github.com/pwnedgod/hexa/codec/json"
	"github.com/pwnedgod/hexa/codec/msgpack"
	"github.com/pwnedgod/hexa/config"
	"github.com/pwnedgod/hexa/logger"
	hexalogrus "github.com/pwnedgod/hexa/logger/logrus"
	"github.com/pwnedgod/hexa/logger/std"
	hexazap "github.com/pwnedgod/hexa/logger/zap"
	"github.com/redis/go-redis/v9"
)

func newCodec(name string) (codec.Codec, error) {
	switch name {
	case config.CodecJSON:
		return json.NewCodec(), nil
	case config.CodecMsgpack:
		return msgpack.NewCodec(), nil
	}
	return nil, errors.Newf("unknown codec %q", name)
}

func newLogger(cfg config.Log) (logger.Logger, error) {
	switch cfg.Driver {
	case config.DriverStd:
		return std.NewLogger(), nil
	case config.DriverZap:
		return hexazap.NewProductionLogger(cfg.Level)
	case config.DriverLogrus:
		return hexalogrus.NewTextLogger(cfg.Level)
	}
	return nil, errors.Newf("unknown log driver %q", cfg.Driver)
}

// newAdapter returns the configured adapter and a function closing its connections.
func newAdapter(cfg config.Storage) (adapter.Adapter, func() error, error) {
	nop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendMemory:
		return memory.NewAdapter(), nop, nil

	case config.BackendGoRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})

		var opt goredis.Option
		switch cfg.Locker {
		case config.LockerRedislock:
			opt = goredis.WithLocker(redislock.NewLocker(client, cfg.LockTTL))
		default:
			opt = goredis.WithLocker(redsync.NewLockerWithOptions(
				[]rsredis.Pool{rsgoredis.NewPool(client)},
				[]rsredsync.Option{rsredsync.WithExpiry(cfg.LockTTL)},
			))
		}
		return goredis.NewAdapter(client, opt), client.Close, nil

	case config.BackendRedigo:
		pool := &redigoredis.Pool{
			MaxIdle: 4,
			DialContext: func(ctx context.Context) (redigoredis.Conn, error) {
				return redigoredis.DialContext(ctx, "tcp", cfg.Addr,
					redigoredis.DialPassword(cfg.Password),
					redigoredis.DialDatabase(cfg.DB),
				)
			},
		}
		return redigo.NewAdapter(pool), pool.Close, nil
	}

	return nil, nil, errors.Newf("unknown storage backend %q", cfg.Backend)
}
