package extService

import (
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"propsTracker/models"
	"propsTracker/models/external"
	"propsTracker/services/common"
)

const jolpicaBaseUrl = "http://api.jolpi.ca/ergast/f1"
const f1Season = "2025"

// GetDriverStandings fetches the current F1 championship table.
func GetDriverStandings(db *gorm.DB) ([]models.DriverStanding, error) {
	standingsUrl := fmt.Sprintf("%s/%s/driverStandings.json", jolpicaBaseUrl, f1Season)

	resp, err := common.JolpicaWrapper(standingsUrl)
	if err != nil {
		common.LogError(db, "extService.GetDriverStandings", err)
		return nil, err
	}
	defer resp.Body.Close()

	var payload external.Jolpica_Response
	err = json.NewDecoder(resp.Body).Decode(&payload)
	if err != nil {
		common.LogError(db, "extService.GetDriverStandings", err)
		return nil, err
	}

	var standings []models.DriverStanding
	lists := payload.MRData.StandingsTable.StandingsLists
	if len(lists) == 0 {
		return standings, nil
	}

	for _, entry := range lists[0].DriverStandings {
		team := "Unknown"
		if len(entry.Constructors) > 0 {
			team = entry.Constructors[0].Name
		}
		standings = append(standings, models.DriverStanding{
			Position: entry.Position,
			Driver:   driverName(entry.Driver),
			Team:     team,
			Points:   entry.Points,
			Wins:     entry.Wins,
		})
	}
	return standings, nil
}

// GetRaces fetches the season calendar and merges in winners for races
// already run.
func GetRaces(db *gorm.DB, limit int) ([]models.RaceInfo, error) {
	scheduleUrl := fmt.Sprintf("%s/%s.json", jolpicaBaseUrl, f1Season)
	resultsUrl := fmt.Sprintf("%s/%s/results/1.json", jolpicaBaseUrl, f1Season)

	scheduleResp, err := common.JolpicaWrapper(scheduleUrl)
	if err != nil {
		common.LogError(db, "extService.GetRaces", err)
		return nil, err
	}
	defer scheduleResp.Body.Close()

	var schedule external.Jolpica_Response
	err = json.NewDecoder(scheduleResp.Body).Decode(&schedule)
	if err != nil {
		common.LogError(db, "extService.GetRaces", err)
		return nil, err
	}

	winners := map[string]string{}
	resultsResp, err := common.JolpicaWrapper(resultsUrl)
	if err == nil {
		defer resultsResp.Body.Close()
		var results external.Jolpica_Response
		if decodeErr := json.NewDecoder(resultsResp.Body).Decode(&results); decodeErr == nil {
			for _, race := range results.MRData.RaceTable.Races {
				if len(race.Results) > 0 {
					winners[race.Round] = driverName(race.Results[0].Driver)
				}
			}
		}
	}

	var races []models.RaceInfo
	for _, race := range schedule.MRData.RaceTable.Races {
		if limit > 0 && len(races) >= limit {
			break
		}

		location := race.Circuit.Location
		info := models.RaceInfo{
			Name:     race.RaceName,
			Date:     raceDate(race),
			Location: fmt.Sprintf("%s, %s", location.Locality, location.Country),
		}

		if winner, ok := winners[race.Round]; ok {
			info.Winner = winner
			info.Status = "Completed"
			info.Completed = true
		} else {
			info.Winner = "TBD"
			info.Status = "Scheduled"
		}

		races = append(races, info)
	}
	return races, nil
}

func driverName(driver external.Jolpica_Driver) string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", driver.GivenName, driver.FamilyName))
}

func raceDate(race external.Jolpica_Race) string {
	if race.Date != "" && race.Time != "" {
		return fmt.Sprintf("%sT%s", race.Date, race.Time)
	}
	return race.Date
}
