package grid

import "fmt"

// Default game balance.
const (
	DefaultSize       = 4
	DefaultWinTarget  = 2048
	DefaultSpawn4Prob = 0.10
)

// Rules holds the parameters of one puzzle variant.
type Rules struct {
	Size       int     // Board dimension N
	WinTarget  int     // Tile value that counts as a win
	Spawn4Prob float64 // Probability that a spawned tile is 4 instead of 2
}

// DefaultRules returns the classic 4x4 rules with a 2048 target.
func DefaultRules() Rules {
	return Rules{
		Size:       DefaultSize,
		WinTarget:  DefaultWinTarget,
		Spawn4Prob: DefaultSpawn4Prob,
	}
}

// Validate checks that the rules describe a playable variant.
func (r Rules) Validate() error {
	if r.Size < 2 {
		return fmt.Errorf("%w: size %d is below 2", ErrInvalidRules, r.Size)
	}
	if !isTileValue(r.WinTarget) || r.WinTarget < 4 {
		return fmt.Errorf("%w: win target %d is not a power of two >= 4", ErrInvalidRules, r.WinTarget)
	}
	if r.Spawn4Prob < 0 || r.Spawn4Prob > 1 {
		return fmt.Errorf("%w: spawn4 probability %v outside [0,1]", ErrInvalidRules, r.Spawn4Prob)
	}
	return nil
}

// Variant returns a short identifier such as "4x4-2048", used to key scores.
func (r Rules) Variant() string {
	return fmt.Sprintf("%dx%d-%d", r.Size, r.Size, r.WinTarget)
}
