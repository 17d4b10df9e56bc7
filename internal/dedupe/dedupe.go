// Package dedupe holds shared singleflight groups so concurrent identical
// reads run once while the other callers wait for the same result.
package dedupe

import "golang.org/x/sync/singleflight"

// ViewGroup coalesces projected-view reads keyed by "<game id>:<side>".
var ViewGroup singleflight.Group

// LeaderboardGroup coalesces leaderboard reads keyed by the limit.
var LeaderboardGroup singleflight.Group
