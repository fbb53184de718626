package common

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"propsTracker/models"
)

var httpClient = &http.Client{Timeout: 15 * time.Second}

func ESPNWrapper(requestUrl string) (*http.Response, error) {
	req, err := http.NewRequest("GET", requestUrl, nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != 200 {
		resp.Body.Close()
		return nil, fmt.Errorf("espn returned status %d for %s", resp.StatusCode, requestUrl)
	}
	return resp, nil
}

func JolpicaWrapper(requestUrl string) (*http.Response, error) {
	req, err := http.NewRequest("GET", requestUrl, nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != 200 {
		resp.Body.Close()
		return nil, fmt.Errorf("jolpica returned status %d for %s", resp.StatusCode, requestUrl)
	}
	return resp, nil
}

func LogError(db *gorm.DB, source string, err error) {
	log.Printf("[%s] %v", source, err)

	if db == nil {
		return
	}
	errLog := models.ErrorLog{
		Source:  source,
		Message: fmt.Sprintf("%v", err),
	}
	db.Create(&errLog)
}

func Contains[T comparable](s []T, e T) bool {
	for _, v := range s {
		if v == e {
			return true
		}
	}
	return false
}

// MatchesSubject is the single matching rule for player and team names
// against stat lines, scoreboard entries, and scoring play text.
// Case-insensitive substring, so "McCaffrey" matches "Christian McCaffrey"
// and "49ers" matches "San Francisco 49ers".
func MatchesSubject(candidate string, subject string) bool {
	if subject == "" {
		return false
	}
	return strings.Contains(strings.ToLower(candidate), strings.ToLower(subject))
}

// ParseStatValue parses a single boxscore cell. ESPN serves every stat as a
// string, occasionally with thousands separators ("1,024").
func ParseStatValue(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" || cleaned == "--" {
		return 0, false
	}
	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

// SplitPair parses compound cells like "21/25" (completions/attempts) or
// "7-13" (made-attempted). Returns numerator, denominator.
func SplitPair(raw string, sep string) (float64, float64, bool) {
	parts := strings.Split(strings.TrimSpace(raw), sep)
	if len(parts) != 2 {
		return 0, 0, false
	}
	num, okNum := ParseStatValue(parts[0])
	den, okDen := ParseStatValue(parts[1])
	if !okNum || !okDen {
		return 0, 0, false
	}
	return num, den, true
}

func FormatOdds(odds float64) string {
	response := ""

	if odds == float64(int(odds)) {
		response = strconv.Itoa(int(odds))
	} else {
		response = fmt.Sprintf("%.1f", odds)
	}

	if odds > 0 {
		return fmt.Sprintf("+%s", response)
	}
	return response
}

// FormatValue renders a stat value without a trailing ".0" for whole numbers.
func FormatValue(v float64) string {
	if v == float64(int(v)) {
		return strconv.Itoa(int(v))
	}
	return fmt.Sprintf("%.1f", v)
}

// FormatSigned renders a margin with an explicit sign, "+4" or "-3".
func FormatSigned(v float64) string {
	if v > 0 {
		return fmt.Sprintf("+%s", FormatValue(v))
	}
	return FormatValue(v)
}

// OddsMultiplier converts American odds to a decimal payout multiplier.
func OddsMultiplier(odds float64) float64 {
	if odds > 0 {
		return (odds / 100.0) + 1.0
	}
	if odds < 0 {
		return (100.0 / -odds) + 1.0
	}
	return 1.0
}

// CalculatePayout returns the total payout (stake included) for a winning
// bet at the given American odds.
func CalculatePayout(stake float64, odds float64) float64 {
	return stake * OddsMultiplier(odds)
}
