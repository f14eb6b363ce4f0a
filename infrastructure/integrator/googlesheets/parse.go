package googlesheets

import (
	"math"
	"strconv"
	"strings"

	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Layout fixo do modelo: linha 0 com os nomes (a partir da coluna 2),
// linha 7 com o CVR real e linha 8 com o CVR objetivo.
const (
	namesRow          = 0
	actualRow         = 7
	objectiveRow      = 8
	firstCampaignCol  = 2
	capacityRow       = 4
	dailyCapCol       = 1
	weeklyCapCol      = 2
	performanceMetric = "CVR"
)

// ParsePercentage converte "5%" ou "6,30%" em 5 e 6.3. Vazio vale 0.
func ParsePercentage(value string) (float64, error) {
	value = strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(value, "%", ""), ",", "."))
	if value == "" {
		return 0, nil
	}

	return parseFinite(value)
}

// parseNumber aceita separador de milhar com vírgula ou espaço ("1,400", "1 400")
func parseNumber(value string) (float64, error) {
	value = strings.ReplaceAll(strings.ReplaceAll(value, ",", ""), " ", "")
	return parseFinite(value)
}

// parseFinite recusa "NaN" e "Inf", que o ParseFloat aceita
func parseFinite(value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.Errorf("valor não finito: %q", value)
	}
	return f, nil
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

func cell(rows [][]string, row, col int) (string, bool) {
	if row >= len(rows) || col >= len(rows[row]) {
		return "", false
	}
	return rows[row][col], true
}

func parsePerformanceGrid(rows [][]string) map[string]domain.PerformanceRecord {
	campaigns := map[string]domain.PerformanceRecord{}
	if len(rows) <= objectiveRow {
		return campaigns
	}

	names := rows[namesRow]
	for col := firstCampaignCol; col < len(names); col++ {
		actualCell, okActual := cell(rows, actualRow, col)
		objectiveCell, okObjective := cell(rows, objectiveRow, col)
		if !okActual || !okObjective {
			break
		}

		name := strings.TrimSpace(names[col])
		if name == "" {
			continue
		}

		actual, err := ParsePercentage(actualCell)
		if err != nil {
			logrus.WithField("campaign_name", name).Debugf("CVR real ilegível: %q", actualCell)
			continue
		}

		objective, err := ParsePercentage(objectiveCell)
		if err != nil {
			logrus.WithField("campaign_name", name).Debugf("CVR objetivo ilegível: %q", objectiveCell)
			continue
		}

		id := slug(name)
		campaigns[id] = domain.PerformanceRecord{
			ID:         id,
			Name:       name,
			Actual:     actual,
			Objective:  objective,
			MetricName: performanceMetric,
		}
	}

	return campaigns
}

// parseCapacityGrid lê os limites diário (coluna B) e semanal (coluna C) da aba de recursos.
// Um limite diário ilegível descarta os dois.
func parseCapacityGrid(rows [][]string) (daily, weekly *float64) {
	dailyCell, ok := cell(rows, capacityRow, dailyCapCol)
	if !ok {
		return nil, nil
	}

	dailyValue, err := parseNumber(dailyCell)
	if err != nil {
		logrus.Warnf("Limite diário ilegível: %q", dailyCell)
		return nil, nil
	}
	daily = &dailyValue

	weeklyCell, ok := cell(rows, capacityRow, weeklyCapCol)
	if !ok {
		return daily, nil
	}

	weeklyValue, err := parseNumber(weeklyCell)
	if err != nil {
		logrus.Warnf("Limite semanal ilegível: %q", weeklyCell)
		return daily, nil
	}

	return daily, &weeklyValue
}
