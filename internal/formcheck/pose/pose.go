package pose

import "time"

// JointID enumerates the body landmarks tracked during a squat.
// The numeric values are stable and used as array offsets everywhere,
// so never reorder them.
type JointID int

const (
	Root JointID = iota // pelvis center
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle
	LeftShoulder
	RightShoulder

	NumJoints = 9
)

func (j JointID) String() string {
	switch j {
	case Root:
		return "root"
	case LeftHip:
		return "left_hip"
	case RightHip:
		return "right_hip"
	case LeftKnee:
		return "left_knee"
	case RightKnee:
		return "right_knee"
	case LeftAnkle:
		return "left_ankle"
	case RightAnkle:
		return "right_ankle"
	case LeftShoulder:
		return "left_shoulder"
	case RightShoulder:
		return "right_shoulder"
	default:
		return "unknown"
	}
}

// Point is a 2D location in normalized video coordinates,
// x and y in [0,1], y increasing upward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sample holds one frame's worth of joint locations, indexed by JointID.
// A nil slot means the joint was not detected (or was below the estimator
// confidence threshold) in that frame.
type Sample struct {
	Joints [NumJoints]*Point
}

// EmptySample is used when pose estimation failed for a whole frame.
func EmptySample() Sample {
	return Sample{}
}

func (s Sample) Joint(id JointID) *Point {
	return s.Joints[id]
}

// LegTracked reports whether at least one side's hip+knee+ankle
// triple is fully detected.
func (s Sample) LegTracked() bool {
	left := s.Joints[LeftHip] != nil && s.Joints[LeftKnee] != nil && s.Joints[LeftAnkle] != nil
	right := s.Joints[RightHip] != nil && s.Joints[RightKnee] != nil && s.Joints[RightAnkle] != nil
	return left || right
}

// midpoint of the detected points among a/b: both -> average,
// one -> that one alone, none -> not ok.
func midpoint(a, b *Point) (Point, bool) {
	switch {
	case a != nil && b != nil:
		return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}, true
	case a != nil:
		return *a, true
	case b != nil:
		return *b, true
	default:
		return Point{}, false
	}
}

func (s Sample) HipMidpoint() (Point, bool) {
	return midpoint(s.Joints[LeftHip], s.Joints[RightHip])
}

func (s Sample) ShoulderMidpoint() (Point, bool) {
	return midpoint(s.Joints[LeftShoulder], s.Joints[RightShoulder])
}

func (s Sample) KneeMidpoint() (Point, bool) {
	return midpoint(s.Joints[LeftKnee], s.Joints[RightKnee])
}

func (s Sample) AnkleMidpoint() (Point, bool) {
	return midpoint(s.Joints[LeftAnkle], s.Joints[RightAnkle])
}

// Timeline is the per-video sequence of pose samples with their frame
// timestamps. It is append-only during acquisition and read-only for
// rule evaluation.
type Timeline struct {
	samples       []Sample
	timestamps    []time.Duration
	frameDuration time.Duration
	hasFrameRate  bool
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

func (t *Timeline) Append(s Sample, ts time.Duration) {
	t.samples = append(t.samples, s)
	t.timestamps = append(t.timestamps, ts)
}

// SetFrameDuration records the video's nominal per-frame duration,
// when the frame rate could be determined.
func (t *Timeline) SetFrameDuration(d time.Duration) {
	t.frameDuration = d
	t.hasFrameRate = true
}

func (t *Timeline) FrameDuration() (time.Duration, bool) {
	return t.frameDuration, t.hasFrameRate
}

func (t *Timeline) Len() int {
	return len(t.samples)
}

func (t *Timeline) Sample(i int) Sample {
	return t.samples[i]
}

func (t *Timeline) Timestamp(i int) time.Duration {
	return t.timestamps[i]
}

// DetectionRatio is the fraction of frames where a full leg
// (hip+knee+ankle on at least one side) was tracked. Used as the
// global detection quality signal.
func (t *Timeline) DetectionRatio() float64 {
	if len(t.samples) == 0 {
		return 0
	}
	tracked := 0
	for _, s := range t.samples {
		if s.LegTracked() {
			tracked++
		}
	}
	return float64(tracked) / float64(len(t.samples))
}

// BottomFrameIndex returns the index of the frame with the lowest
// average hip height - the bottom of the squat. Ties go to the first
// occurrence. Returns false if no frame has any hip point at all.
func (t *Timeline) BottomFrameIndex() (int, bool) {
	bottomIndex := -1
	bottomY := 0.0
	for i, s := range t.samples {
		hip, ok := s.HipMidpoint()
		if !ok {
			continue
		}
		if bottomIndex == -1 || hip.Y < bottomY {
			bottomIndex = i
			bottomY = hip.Y
		}
	}
	if bottomIndex == -1 {
		return 0, false
	}
	return bottomIndex, true
}
