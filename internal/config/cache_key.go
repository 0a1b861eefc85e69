package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// RevokedTokenKey returns the denylist key for a revoked token's JTI.
func (r *CacheKeyStruct) RevokedTokenKey(jti string) string {
	return fmt.Sprintf("auth:revoked:%s", jti)
}

// LoginAttemptsKey returns the rate limit counter key for a client IP
// within the given fixed window.
func (r *CacheKeyStruct) LoginAttemptsKey(ip string, window int64) string {
	return fmt.Sprintf("ratelimit:login:%s:%d", ip, window)
}

// ProgrammeListKey returns the cache key for the public programme listing.
func (r *CacheKeyStruct) ProgrammeListKey() string {
	return "catalogue:programmes"
}

// SemesterListKey returns the cache key for the public semester listing.
func (r *CacheKeyStruct) SemesterListKey() string {
	return "catalogue:semesters"
}

var CacheKey = NewCacheKeyStruct()
