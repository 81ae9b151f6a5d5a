package paopao

// Adaptive smoothing: fast motion is tracked responsively, slow motion is
// heavily damped to suppress landmark jitter.
const (
	smoothAlphaMin = 0.15
	smoothAlphaMax = 0.7
	smoothAlphaK   = 0.02 // alpha per pixel of center movement

	// New samples are claimed by the nearest existing track within this
	// distance; anything farther starts a fresh track.
	trackClaimDist = 250.0
)

// HandPose is the smoothed, classified state of one tracked hand for the
// current tick. Center and Velocity are always derived from the smoothed
// landmarks, never set independently.
type HandPose struct {
	Track      int
	Handedness string
	Landmarks  [NumLandmarks]Vec2 // screen space
	Center     Vec2               // landmark 9 (middle MCP), screen space
	Velocity   Vec2               // center delta since the previous tick
	Gesture    Gesture            // majority-vote stabilized
}

// handTrack carries the state that must survive across ticks for one hand:
// the previous smoothed landmark set, the gesture history ring, and the
// per-hand spawner anchors. Tracks are created on first sight and evicted
// after going unseen for the configured number of consecutive ticks, so
// stale smoothing state never reattaches to an unrelated hand.
type handTrack struct {
	id         int
	handedness string
	landmarks  [NumLandmarks]Vec2
	center     Vec2
	velocity   Vec2
	history    gestureHistory
	gesture    Gesture
	missed     int
	claimed    bool // sample matched this tick

	// Spawner state (owned here so it dies with the track).
	creation    *ActiveCreation
	trailAnchor Vec2
	hasAnchor   bool
}

// handTracker owns all live hand tracks.
type handTracker struct {
	tracks     []*handTrack
	nextID     int
	evictTicks int
	w, h       float64
}

func newHandTracker(w, h float64, evictTicks int) *handTracker {
	if evictTicks <= 0 {
		evictTicks = 12
	}
	return &handTracker{evictTicks: evictTicks, w: w, h: h}
}

// update ingests the tick's raw samples: each valid sample is smoothed into
// the nearest existing track or a new one, unseen tracks age toward
// eviction, and the surviving tracks' poses are refreshed. Invalid samples
// are dropped silently and the previous smoothing state is retained.
func (t *handTracker) update(samples []HandSample) {
	for _, tr := range t.tracks {
		tr.claimed = false
	}

	for _, s := range samples {
		if !s.Valid() {
			continue
		}
		lm := s.toScreen(t.w, t.h)
		rawCenter := lm[MiddleMCP]

		tr := t.claim(rawCenter)
		if tr == nil {
			tr = &handTrack{id: t.nextID, handedness: s.Handedness}
			t.nextID++
			// First sample passes through unsmoothed.
			tr.landmarks = lm
			tr.center = rawCenter
			t.tracks = append(t.tracks, tr)
		} else {
			alpha := clamp(dist(rawCenter, tr.center)*smoothAlphaK,
				smoothAlphaMin, smoothAlphaMax)
			prev := tr.center
			for i := range lm {
				tr.landmarks[i].X = lerp(tr.landmarks[i].X, lm[i].X, alpha)
				tr.landmarks[i].Y = lerp(tr.landmarks[i].Y, lm[i].Y, alpha)
			}
			tr.center = tr.landmarks[MiddleMCP]
			tr.velocity = Vec2{X: tr.center.X - prev.X, Y: tr.center.Y - prev.Y}
		}
		tr.claimed = true
		tr.missed = 0
		tr.gesture = tr.history.push(ClassifyGesture(tr.landmarks))
	}

	// Age and evict unseen tracks.
	kept := t.tracks[:0]
	for _, tr := range t.tracks {
		if !tr.claimed {
			tr.missed++
			tr.velocity = Vec2{}
			tr.gesture = tr.history.push(GestureNone)
			if tr.missed >= t.evictTicks {
				continue
			}
		}
		kept = append(kept, tr)
	}
	t.tracks = kept
}

// claim returns the nearest unclaimed track within trackClaimDist of the
// raw center, or nil if none qualifies.
func (t *handTracker) claim(center Vec2) *handTrack {
	var best *handTrack
	bestD := trackClaimDist
	for _, tr := range t.tracks {
		if tr.claimed {
			continue
		}
		if d := dist(center, tr.center); d < bestD {
			best = tr
			bestD = d
		}
	}
	return best
}

// poses returns the current tick's pose snapshot for every live track that
// was seen this tick.
func (t *handTracker) poses() []HandPose {
	out := make([]HandPose, 0, len(t.tracks))
	for _, tr := range t.tracks {
		if !tr.claimed {
			continue
		}
		out = append(out, HandPose{
			Track:      tr.id,
			Handedness: tr.handedness,
			Landmarks:  tr.landmarks,
			Center:     tr.center,
			Velocity:   tr.velocity,
			Gesture:    tr.gesture,
		})
	}
	return out
}
