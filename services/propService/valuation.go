package propService

import (
	"math"
	"strings"

	"propsTracker/models"
)

const pushEpsilon = 1e-6

// ComputePropStatus derives a prop's settlement status from its current
// value and the game phase. It is a pure function re-evaluated from scratch
// on every refresh; nothing carries over from the previous status.
//
// currentValue nil means the stat could not be resolved: still pending
// before and during the game, unavailable once the game is final.
func ComputePropStatus(prop *models.PlayerProp, currentValue *float64, gameState string) string {
	if currentValue == nil {
		if isFinal(gameState) {
			return models.PropStatusUnavailable
		}
		return models.PropStatusPending
	}

	value := *currentValue
	side := strings.ToLower(prop.Side)
	line := prop.Line
	final := isFinal(gameState)

	switch models.StripPeriodPrefix(prop.MarketType) {
	case models.MarketMoneyline:
		// Value is the margin for the picked team. No pushes; an exactly
		// tied game is simply not winning.
		if value > 0 {
			return liveOrFinal(final, models.PropStatusWon, models.PropStatusLiveHit)
		}
		return liveOrFinal(final, models.PropStatusLost, models.PropStatusLiveMiss)

	case models.MarketSpread:
		marginWithSpread := value + line
		if math.Abs(marginWithSpread) < pushEpsilon {
			return liveOrFinal(final, models.PropStatusPush, models.PropStatusLivePush)
		}
		if marginWithSpread > 0 {
			return liveOrFinal(final, models.PropStatusWon, models.PropStatusLiveHit)
		}
		return liveOrFinal(final, models.PropStatusLost, models.PropStatusLiveMiss)

	case models.MarketTotalScore, models.MarketHomeTeamPoints, models.MarketAwayTeamPoints:
		if math.Abs(value-line) < pushEpsilon {
			return liveOrFinal(final, models.PropStatusPush, models.PropStatusLivePush)
		}

		isHit := value < line
		if side == "over" {
			isHit = value > line
		}
		if final {
			if isHit {
				return models.PropStatusWon
			}
			return models.PropStatusLost
		}

		// Scores only go up, so a live total is asymmetric: an over that
		// has cleared the line is already won, and an under is dead the
		// moment the total clears it.
		if side == "over" {
			if isHit {
				return models.PropStatusWon
			}
			return models.PropStatusLiveMiss
		}
		if isHit {
			return models.PropStatusLiveHit
		}
		return models.PropStatusLost
	}

	// Player props.
	if !final {
		isHit := value < line
		if side == "over" {
			isHit = value > line
		}
		if isHit {
			return models.PropStatusLiveHit
		}
		return models.PropStatusLiveMiss
	}

	if math.Abs(value-line) < pushEpsilon {
		return models.PropStatusPush
	}
	if side == "over" {
		if value > line {
			return models.PropStatusWon
		}
		return models.PropStatusLost
	}
	if value < line {
		return models.PropStatusWon
	}
	return models.PropStatusLost
}

func isFinal(gameState string) bool {
	return gameState == models.GameStatePost || gameState == "final"
}

func liveOrFinal(final bool, finalStatus string, liveStatus string) string {
	if final {
		return finalStatus
	}
	return liveStatus
}
