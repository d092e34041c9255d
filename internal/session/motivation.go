package session

// Motivation returns the line shown under the win and game-over banners.
func Motivation(score int, won bool) string {
	switch {
	case won:
		return "Genius! You made it to the top of the numbers!"
	case score > 5000:
		return "So close to the target, your hands are on fire!"
	case score > 2000:
		return "Finding your rhythm. Keep pushing!"
	default:
		return "Like life, some tiles just never line up."
	}
}
