// Package director drives a session with an automatic player
package director

import (
	"context"
	"time"

	"github.com/they4kman/gosweep/game"
)

// Run steps director every interval until ctx is done, then ends it
func Run(ctx context.Context, director game.Director, session *game.Session, interval time.Duration) {
	director.Init(session)
	defer director.End()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			director.Act()
		}
	}
}
