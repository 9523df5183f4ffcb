package services

import (
	"fmt"

	"skyrio/internal/domain/models"
	"skyrio/internal/repositories"
	"skyrio/internal/utils"

	"go.uber.org/zap"
)

// AirportService answers airport lookups from the in-memory catalog.
type AirportService struct {
	Repo   *repositories.AirportRepository
	Logger *zap.Logger
}

func (s AirportService) Search(requestID, q string) []models.Airport {
	if s.Repo == nil {
		return []models.Airport{}
	}
	out := s.Repo.Search(q)
	utils.LogEvent(s.Logger, requestID, "airports", "search", fmt.Sprintf("matched=%d", len(out)),
		zap.Int("query_len", len(q)))
	return out
}
