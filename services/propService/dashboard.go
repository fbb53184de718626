package propService

import (
	"strings"

	"github.com/google/uuid"

	"propsTracker/models"
)

// Dashboard is an in-memory collection of props for one CLI session. Props
// are tracked per sport; Refresh runs the whole set through the batch
// refresher in place.
type Dashboard struct {
	Sport string
	Props []*models.PlayerProp
}

func NewDashboard(sport string) *Dashboard {
	return &Dashboard{Sport: strings.ToLower(sport)}
}

func (d *Dashboard) AddProp(gameID string, gameLabel string, playerName string, teamName string, marketType string, line float64, side string, stake float64, odds float64) *models.PlayerProp {
	prop := &models.PlayerProp{
		ID:         uuid.NewString(),
		Sport:      d.Sport,
		GameID:     gameID,
		GameLabel:  gameLabel,
		PlayerName: playerName,
		TeamName:   teamName,
		MarketType: marketType,
		Line:       line,
		Side:       strings.ToLower(side),
		Stake:      stake,
		Odds:       odds,
		GameState:  models.GameStatePre,
		PropStatus: models.PropStatusPending,
	}
	d.Props = append(d.Props, prop)
	return prop
}

func (d *Dashboard) RemoveProp(propID string) bool {
	for i, prop := range d.Props {
		if prop.ID == propID {
			d.Props = append(d.Props[:i], d.Props[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Dashboard) Refresh(refresher *Refresher) {
	refresher.RefreshProps(d.Props)
}
