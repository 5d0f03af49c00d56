package game

// MaxLevel is the last playable level; clearing it wins the game.
const MaxLevel = 5

type QuestionType string

const (
	QuestionMaxHeight      QuestionType = "max_height"
	QuestionRange          QuestionType = "range"
	QuestionTotalTime      QuestionType = "total_time"
	QuestionImpactVelocity QuestionType = "impact_velocity"
)

// LevelDef describes how one level generates its problems: the random
// parameter ranges (inclusive, integer draws) and the questions asked.
// A level where AngleLo == AngleHi always launches at that fixed angle.
type LevelDef struct {
	Level int
	Title string

	VelocityLo, VelocityHi int
	AngleLo, AngleHi       int
	HeightLo, HeightHi     int

	Questions []QuestionType
}

var levels = []LevelDef{
	{
		Level: 1, Title: "Ground launch",
		VelocityLo: 20, VelocityHi: 80,
		AngleLo: 30, AngleHi: 75,
		Questions: []QuestionType{QuestionMaxHeight, QuestionRange, QuestionTotalTime},
	},
	{
		Level: 2, Title: "Launch from a platform",
		VelocityLo: 20, VelocityHi: 60,
		AngleLo: 20, AngleHi: 60,
		HeightLo: 20, HeightHi: 100,
		Questions: []QuestionType{QuestionRange, QuestionTotalTime, QuestionImpactVelocity, QuestionMaxHeight},
	},
	{
		Level: 3, Title: "Horizontal drop",
		VelocityLo: 15, VelocityHi: 50,
		HeightLo: 50, HeightHi: 150,
		Questions: []QuestionType{QuestionTotalTime},
	},
	{
		Level: 4, Title: "Horizontal throw",
		VelocityLo: 15, VelocityHi: 50,
		HeightLo: 30, HeightHi: 100,
		Questions: []QuestionType{QuestionRange, QuestionImpactVelocity},
	},
	{
		Level: 5, Title: "Downward shot",
		VelocityLo: 20, VelocityHi: 60,
		AngleLo: -60, AngleHi: -20,
		HeightLo: 50, HeightHi: 150,
		Questions: []QuestionType{QuestionRange, QuestionTotalTime, QuestionImpactVelocity},
	},
}

// Levels returns the full level table in order.
func Levels() []LevelDef {
	return levels
}

// LevelAt returns the definition for level n.
func LevelAt(n int) (LevelDef, bool) {
	for _, l := range levels {
		if l.Level == n {
			return l, true
		}
	}
	return LevelDef{}, false
}

// questionText maps each question to its prompt and unit.
var questionText = map[QuestionType]struct {
	Text string
	Unit string
}{
	QuestionMaxHeight:      {"Maximum Height (from ground)", "m"},
	QuestionRange:          {"Horizontal Distance (Range)", "m"},
	QuestionTotalTime:      {"Total Time of Flight", "s"},
	QuestionImpactVelocity: {"Final Velocity (Impact Speed)", "m/s"},
}
