// Package dialogue implements the advisor's conversation pipeline: an
// explicit stage machine that asks one question at a time, parses each
// reply into the profile, and hands a completed profile to the
// recommender. Stage is a stored field, never inferred from message text,
// so assistant phrasing can change without breaking the pipeline.
package dialogue

// Stage is the pipeline's position in the fixed question sequence. Stages
// are strictly ordered; the only loop is a stage re-asking its own question
// after a failed extraction.
type Stage string

// Pipeline stages, in conversation order.
const (
	StageRapport   Stage = "rapport"   // collecting interests
	StageCapital   Stage = "capital"   // collecting liquid capital
	StageHours     Stage = "hours"     // collecting time commitment
	StageSize      Stage = "size"      // collecting system-size preference
	StageRecommend Stage = "recommend" // filtering + composing, not a question stage
	StageDone      Stage = "done"      // terminal; profile is frozen
)

// Terminal reports whether the conversation has finished collecting data
// and produced its recommendation.
func (s Stage) Terminal() bool {
	return s == StageDone
}
