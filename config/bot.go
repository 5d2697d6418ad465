package config

// BotDifficulty selects the tuning table for an AI-controlled participant
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds tuning values for bots at a specific difficulty.
// No decision logic consumes these yet.
type BotDifficultyConfig struct {
	Name          string
	ReactionDelay int     // Frames to delay reactions
	Aggression    float64 // 0.0 passive, 1.0 always attacks
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds bot AI configuration
var Bot BotConfigData

// BotSlot is one AI-controlled country in a single player session
type BotSlot struct {
	Country    string
	Difficulty BotDifficulty
}

// SessionConfigData lists who takes part when single player starts
type SessionConfigData struct {
	HumanCountry string
	Bots         []BotSlot
}

// Session holds the single player roster
var Session SessionConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				Name:          "Easy",
				ReactionDelay: 30, // 0.5 second reaction time
				Aggression:    0.25,
			},
			BotDifficultyNormal: {
				Name:          "Normal",
				ReactionDelay: 15,
				Aggression:    0.5,
			},
			BotDifficultyHard: {
				Name:          "Hard",
				ReactionDelay: 5, // Near-instant reaction
				Aggression:    0.8,
			},
		},
	}

	Session = SessionConfigData{
		HumanCountry: "United States",
		Bots: []BotSlot{
			{Country: "Canada", Difficulty: BotDifficultyEasy},
			{Country: "Mexico", Difficulty: BotDifficultyNormal},
			{Country: "Brazil", Difficulty: BotDifficultyHard},
		},
	}
}
