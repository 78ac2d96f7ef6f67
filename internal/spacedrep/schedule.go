package spacedrep

const (
	// MinEaseFactor is the floor for a question's ease factor.
	MinEaseFactor = 1.3

	// MaxEaseFactor caps ease growth so long-lived questions don't
	// schedule reviews years apart.
	MaxEaseFactor = 5.0

	// InitialEaseFactor is assigned when a question is first answered correctly.
	// A wrong first answer starts at MinEaseFactor instead.
	InitialEaseFactor = 2.5

	// EaseBonus is added after each correct answer from the third attempt on.
	EaseBonus = 0.1

	// EasePenalty is subtracted after any wrong answer.
	EasePenalty = 0.2
)

// Intervals in days.
const (
	// FirstInterval follows a correct first attempt. It is also the
	// shortest interval a correct answer can produce.
	FirstInterval = 1.0

	// SecondInterval follows a correct second attempt.
	SecondInterval = 6.0

	// LapseInterval follows any wrong answer.
	LapseInterval = 0.1

	// MaxInterval bounds interval growth at roughly ten years.
	MaxInterval = 3650.0
)
