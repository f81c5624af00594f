package rules

import (
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/feedback"
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/pose"
)

const msgAscentRate = "Your hips are shooting up faster than your chest out of the bottom. Drive your chest up first."

// checkAscentRate compares hip and shoulder vertical velocities at the
// start of the ascent. It needs a known frame duration and at least two
// frames strictly after the bottom frame; otherwise it stays silent.
func checkAscentRate(tl *pose.Timeline, th Thresholds, bottom int) *feedback.Item {
	frameDuration, ok := tl.FrameDuration()
	if !ok || frameDuration <= 0 {
		return nil
	}

	last := tl.Len() - 1
	if last < bottom+2 {
		return nil
	}

	i1 := bottom + 1
	i2 := bottom + 3
	if i2 > last {
		i2 = last
	}

	s1, s2 := tl.Sample(i1), tl.Sample(i2)
	hip1, ok1 := s1.HipMidpoint()
	hip2, ok2 := s2.HipMidpoint()
	shoulder1, ok3 := s1.ShoulderMidpoint()
	shoulder2, ok4 := s2.ShoulderMidpoint()
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil
	}

	dt := float64(i2-i1) * frameDuration.Seconds()
	if dt <= 0 {
		return nil
	}
	hipVelocity := (hip2.Y - hip1.Y) / dt
	shoulderVelocity := (shoulder2.Y - shoulder1.Y) / dt

	if shoulderVelocity > 0 && hipVelocity > th.AscentHipShoulderRatioMax*shoulderVelocity {
		return &feedback.Item{
			Kind:     feedback.KindAscentRate,
			Message:  msgAscentRate,
			Evidence: anchor(tl, i1),
		}
	}
	return nil
}
