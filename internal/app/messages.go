package app

import "time"

// FrameMsg triggers a redraw at the target frame rate.
type FrameMsg time.Time

// RotationTickMsg is one firing of the fast rotation timer.
type RotationTickMsg time.Time

// AnimationTickMsg is one firing of the slow scatter/reassemble timer.
type AnimationTickMsg time.Time
