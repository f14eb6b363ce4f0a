package googlesheets

import (
	"context"

	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/sirupsen/logrus"
)

type Ranges struct {
	Performance string
	Resources   string
}

// PerformanceSource lê o desempenho de vendas da planilha de uma organização
type PerformanceSource struct {
	reader        ValuesReader
	spreadsheetID string
	ranges        Ranges
}

func NewPerformanceSource(reader ValuesReader, spreadsheetID string, ranges Ranges) *PerformanceSource {
	return &PerformanceSource{
		reader:        reader,
		spreadsheetID: spreadsheetID,
		ranges:        ranges,
	}
}

// GetPerformanceData nunca falha: abas ilegíveis resultam em campanhas vazias e limites nulos
func (p *PerformanceSource) GetPerformanceData(ctx context.Context) (*domain.PerformancePayload, error) {
	payload := domain.EmptyPerformancePayload()
	logger := logrus.WithField("spreadsheet_id", p.spreadsheetID)

	if p.spreadsheetID == "" {
		logger.Warn("Nenhuma planilha configurada, retornando dados vazios")
		return payload, nil
	}

	if p.reader == nil {
		logger.Warn("Credenciais do Google indisponíveis, retornando dados vazios")
		return payload, nil
	}

	rows, err := p.reader.ReadRange(ctx, p.spreadsheetID, p.ranges.Performance)
	if err != nil {
		logger.WithError(err).Error("Erro ao ler aba de desempenho")
	} else {
		payload.Campaigns = parsePerformanceGrid(rows)
		logger.Infof("%d campanhas encontradas na planilha", len(payload.Campaigns))
	}

	rows, err = p.reader.ReadRange(ctx, p.spreadsheetID, p.ranges.Resources)
	if err != nil {
		logger.WithError(err).Error("Erro ao ler aba de recursos")
		return payload, nil
	}

	payload.GlobalCap, payload.GlobalCapWeekly = parseCapacityGrid(rows)

	return payload, nil
}
