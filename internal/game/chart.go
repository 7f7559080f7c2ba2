package game

import "time"

// Chart is the full parsed note list for one session.
type Chart struct {
	Notes           []*Note
	UserCount       int64
	BackgroundCount int64
}

// Duration is the total session length, the latest note end.
func (c *Chart) Duration() time.Duration {
	var last float64
	for _, n := range c.Notes {
		if n.End > last {
			last = n.End
		}
	}
	return time.Duration(last * 1000 * float64(time.Millisecond))
}
