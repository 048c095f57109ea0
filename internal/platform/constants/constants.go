// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Sessions: Token issuer and header names.
  - Widgets: Item identifiers, regions and default dimensions.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "panelkit-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Sessions

const (
	// SessionIssuer is the standard 'iss' claim in session tokens.
	SessionIssuer = "panelkit.app"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXSessionToken = "X-Session-Token"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldError = "error"
	FieldCode  = "code"
)

// # Widget Layout

const (
	// ItemContainer and ItemCollection are the stable item ids of the explorer panes.
	ItemContainer  = "container"
	ItemCollection = "collection"

	// ItemDashboard is the item id of the workspace's fixed first tab.
	ItemDashboard = "dashboard"

	// TabNamePrefix precedes the ordinal in every stored tab name ("cmp3").
	TabNamePrefix = "cmp"

	RegionNorth  = "north"
	RegionSouth  = "south"
	RegionEast   = "east"
	RegionWest   = "west"
	RegionCenter = "center"

	// DefaultSideWidth applies to containers anchored west or east.
	DefaultSideWidth = 300
	// DefaultSideHeight applies to containers anchored north or south.
	DefaultSideHeight = 200

	// DefaultDashboardTitle is used when a workspace declares no dashboard title.
	DefaultDashboardTitle = "Dashboard"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixSelection = "explorer:selection:"
)
