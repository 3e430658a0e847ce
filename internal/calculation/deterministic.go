package calculation

import "time"

// nowFunc times Monte Carlo runs.
var nowFunc = time.Now

// SetNowFunc replaces the clock used to time runs. Tests only.
func SetNowFunc(f func() time.Time) { nowFunc = f }

// seedFunc supplies the seed when a run is configured with seed 0.
var seedFunc = func() int64 { return time.Now().UnixNano() }

// SetSeedFunc replaces the seed source. Tests only.
func SetSeedFunc(f func() int64) { seedFunc = f }
