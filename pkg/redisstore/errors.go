package redisstore

import "errors"

var (
	ErrFailedToParseConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady           = errors.New("redis did not become ready within the given time period")
	ErrHealthcheckFailed       = errors.New("redis healthcheck failed")
	ErrEmptyStateField         = errors.New("empty state field name")
	ErrEntityNotFound          = errors.New("entity not found")
)
