package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/TATR0/bot-service/internal/domain"
	"github.com/TATR0/bot-service/internal/ports/repository"
)

// Service справочник для веб-формы: города и сервисы в городе. Только чтение
type Service struct {
	ServiceRepo repository.IServiceRepo
	Log         *slog.Logger
}

func New(serviceRepo repository.IServiceRepo, log *slog.Logger) *Service {
	return &Service{
		ServiceRepo: serviceRepo,
		Log:         log,
	}
}

// ListCities города, где есть хотя бы один сервис, по алфавиту
func (s *Service) ListCities(ctx context.Context) ([]string, error) {
	cities, err := s.ServiceRepo.ListCities(ctx)
	if err != nil {
		return []string{}, fmt.Errorf("failed to list cities: %w", err)
	}
	if cities == nil {
		cities = []string{}
	}
	return cities, nil
}

// ServicesByCity сервисы города без учёта регистра, по названию
func (s *Service) ServicesByCity(ctx context.Context, city string) ([]*domain.Service, error) {
	services, err := s.ServiceRepo.GetByCity(ctx, strings.TrimSpace(city))
	if err != nil {
		return []*domain.Service{}, fmt.Errorf("failed to get services by city: %w", err)
	}
	if services == nil {
		services = []*domain.Service{}
	}
	return services, nil
}
