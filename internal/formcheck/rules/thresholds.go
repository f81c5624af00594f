package rules

// The default thresholds for all biomechanical checks. Empirically
// chosen values, kept as named constants so the rules stay auditable;
// deployments can override them via the thresholds config block.
const (
	// DepthKneeAngleMaxDeg - knee angle at the bottom frame above which
	// the squat counts as too shallow (strict >)
	DepthKneeAngleMaxDeg = 100.0

	// ValgusMinAnkleGap - minimum horizontal ankle separation for the
	// valgus ratio to be meaningful
	ValgusMinAnkleGap = 0.01
	// ValgusKneeAnkleRatioMin - knee-gap/ankle-gap ratio below which a
	// frame counts as knees caving in (strict <)
	ValgusKneeAnkleRatioMin = 0.9

	// TorsoLeanMaxDeg - torso angle from vertical at the bottom frame
	// above which the lean counts as excessive (strict >)
	TorsoLeanMaxDeg = 55.0
	// TorsoAngleMaxChangeDeg - largest allowed frame-to-frame change of
	// the torso/thigh relative angle (strict >)
	TorsoAngleMaxChangeDeg = 15.0

	// HeelLiftMax - ankle rise above the baseline (normalized units)
	// above which heels count as lifting (strict >)
	HeelLiftMax = 0.02

	// AscentHipShoulderRatioMax - hip vertical velocity may exceed
	// shoulder vertical velocity by at most this factor (strict >)
	AscentHipShoulderRatioMax = 1.5

	// DetectionRatioWarnBelow - detection ratios in (0, this) produce a
	// non-fatal quality warning (strict <)
	DetectionRatioWarnBelow = 0.6

	// MinAnalyzableFrames - timelines shorter than this are not
	// evaluated at all
	MinAnalyzableFrames = 6
)

// Thresholds carries per-deployment overrides for the rule constants.
// A zero field means "use the default", so an empty Thresholds value
// behaves exactly like DefaultThresholds().
type Thresholds struct {
	DepthKneeAngleMaxDeg      float64 `toml:"depth_knee_angle_max_deg"`
	ValgusMinAnkleGap         float64 `toml:"valgus_min_ankle_gap"`
	ValgusKneeAnkleRatioMin   float64 `toml:"valgus_knee_ankle_ratio_min"`
	TorsoLeanMaxDeg           float64 `toml:"torso_lean_max_deg"`
	TorsoAngleMaxChangeDeg    float64 `toml:"torso_angle_max_change_deg"`
	HeelLiftMax               float64 `toml:"heel_lift_max"`
	AscentHipShoulderRatioMax float64 `toml:"ascent_hip_shoulder_ratio_max"`
	DetectionRatioWarnBelow   float64 `toml:"detection_ratio_warn_below"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		DepthKneeAngleMaxDeg:      DepthKneeAngleMaxDeg,
		ValgusMinAnkleGap:         ValgusMinAnkleGap,
		ValgusKneeAnkleRatioMin:   ValgusKneeAnkleRatioMin,
		TorsoLeanMaxDeg:           TorsoLeanMaxDeg,
		TorsoAngleMaxChangeDeg:    TorsoAngleMaxChangeDeg,
		HeelLiftMax:               HeelLiftMax,
		AscentHipShoulderRatioMax: AscentHipShoulderRatioMax,
		DetectionRatioWarnBelow:   DetectionRatioWarnBelow,
	}
}

func (t Thresholds) withDefaults() Thresholds {
	def := DefaultThresholds()
	if t.DepthKneeAngleMaxDeg == 0 {
		t.DepthKneeAngleMaxDeg = def.DepthKneeAngleMaxDeg
	}
	if t.ValgusMinAnkleGap == 0 {
		t.ValgusMinAnkleGap = def.ValgusMinAnkleGap
	}
	if t.ValgusKneeAnkleRatioMin == 0 {
		t.ValgusKneeAnkleRatioMin = def.ValgusKneeAnkleRatioMin
	}
	if t.TorsoLeanMaxDeg == 0 {
		t.TorsoLeanMaxDeg = def.TorsoLeanMaxDeg
	}
	if t.TorsoAngleMaxChangeDeg == 0 {
		t.TorsoAngleMaxChangeDeg = def.TorsoAngleMaxChangeDeg
	}
	if t.HeelLiftMax == 0 {
		t.HeelLiftMax = def.HeelLiftMax
	}
	if t.AscentHipShoulderRatioMax == 0 {
		t.AscentHipShoulderRatioMax = def.AscentHipShoulderRatioMax
	}
	if t.DetectionRatioWarnBelow == 0 {
		t.DetectionRatioWarnBelow = def.DetectionRatioWarnBelow
	}
	return t
}
