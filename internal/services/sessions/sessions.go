// Package sessions partitions an event stream into drinking sessions using a
// fixed inactivity gap.
package sessions

import (
	"sort"
	"time"

	"github.com/m-renshaw/pourwatch-tui/internal/models"
)

// GapThreshold is the inactivity span that closes a session. A new session
// starts when the gap between an event and the running session's end exceeds
// this value.
const GapThreshold = 4 * time.Hour

type timedEvent struct {
	ev models.StandardizedEvent
	ts time.Time
}

// Segment builds sessions from an unordered event collection. Events with
// unparsable dates are skipped. The returned slice is in chronological
// (construction) order: oldest session first, events inside each session
// sorted ascending. Callers that want newest-first should use DisplayOrder;
// ordering is never flipped in place.
func Segment(events []models.StandardizedEvent) []models.Session {
	timed := make([]timedEvent, 0, len(events))
	for _, ev := range events {
		if ts, ok := ev.Timestamp(); ok {
			timed = append(timed, timedEvent{ev: ev, ts: ts})
		}
	}
	sort.SliceStable(timed, func(i, j int) bool {
		return timed[i].ts.Before(timed[j].ts)
	})

	var out []models.Session
	var cur models.Session
	open := false

	flush := func() {
		if !open {
			return
		}
		cur.DurationHours = cur.End.Sub(cur.Start).Hours()
		out = append(out, cur)
	}

	for _, te := range timed {
		if !open || te.ts.Sub(cur.End) > GapThreshold {
			flush()
			cur = models.Session{Start: te.ts, End: te.ts}
			open = true
		}
		cur.End = te.ts
		cur.Events = append(cur.Events, te.ev)
		cur.TotalVolumeCL += te.ev.VolumeCL
		cur.TotalEthanolGrams += te.ev.EthanolGrams
	}
	flush()

	return out
}

// DisplayOrder returns a newest-first copy of sessions for presentation. The
// input is left untouched.
func DisplayOrder(chronological []models.Session) []models.Session {
	out := make([]models.Session, len(chronological))
	for i, s := range chronological {
		out[len(chronological)-1-i] = s
	}
	return out
}
