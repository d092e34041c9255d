package registry

import "github.com/vovakirdan/tui-2048/internal/grid"

// Each preset has its own size/target pair, so each keeps its own scoreboard.
func init() {
	Register(Preset{ID: "classic", Title: "Classic 2048", Rules: grid.DefaultRules()})
	Register(Preset{ID: "mini", Title: "Mini (3x3 to 256)", Rules: grid.Rules{Size: 3, WinTarget: 256, Spawn4Prob: grid.DefaultSpawn4Prob}})
	Register(Preset{ID: "quick", Title: "Quick (to 512)", Rules: grid.Rules{Size: 4, WinTarget: 512, Spawn4Prob: grid.DefaultSpawn4Prob}})
	Register(Preset{ID: "big", Title: "Big (5x5 to 4096)", Rules: grid.Rules{Size: 5, WinTarget: 4096, Spawn4Prob: grid.DefaultSpawn4Prob}})
	Register(Preset{ID: "huge", Title: "Huge (6x6 to 8192)", Rules: grid.Rules{Size: 6, WinTarget: 8192, Spawn4Prob: grid.DefaultSpawn4Prob}})
}
