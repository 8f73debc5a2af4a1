package director

import "github.com/they4kman/gosweep/game"

type Result struct {
	Games, Won, Lost int
}

func (result Result) WinRate() float64 {
	if result.Games == 0 {
		return 0
	}
	return float64(result.Won) / float64(result.Games)
}

// Autoplay plays numGames games of config with director, stepping each at most
// maxSteps times. Unfinished games count as neither won nor lost.
func Autoplay(config game.Config, director game.Director, numGames, maxSteps int) Result {
	session := game.NewSession(config)
	director.Init(session)
	defer director.End()

	var result Result
	for i := 0; i < numGames; i++ {
		if i > 0 {
			session.NewGame()
		}

		for step := 0; step < maxSteps && !session.IsGameOver(); step++ {
			director.Act()
		}

		result.Games++
		switch session.State() {
		case game.Won:
			result.Won++
		case game.Lost:
			result.Lost++
		}
	}
	return result
}
