// Copyright (c) 2026 Staffdeck. All rights reserved.

package employees

import (
	"context"
)

// # Listing Cache

// ListCache defines the contract for the volatile employee listing cache.
//
// Implementations must be best-effort: a cache failure is never allowed to
// fail the request, only to degrade it to a database read.
type ListCache interface {

	/*
		Get returns the cached listing, if present and fresh.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Employee: Cached records
		  - bool: Whether a usable cache entry existed
	*/
	Get(context context.Context) ([]*Employee, bool)

	/*
		Set replaces the cached listing.

		Parameters:
		  - context: context.Context
		  - employees: []*Employee
	*/
	Set(context context.Context, employees []*Employee)

	/*
		Invalidate drops the cached listing after any write to the registry.

		Parameters:
		  - context: context.Context
	*/
	Invalidate(context context.Context)
}

// NoopListCache is a [ListCache] that caches nothing. Used when Redis is
// unavailable or in tests that want to exercise the database path.
type NoopListCache struct{}

func (NoopListCache) Get(context.Context) ([]*Employee, bool) { return nil, false }
func (NoopListCache) Set(context.Context, []*Employee)        {}
func (NoopListCache) Invalidate(context.Context)              {}
