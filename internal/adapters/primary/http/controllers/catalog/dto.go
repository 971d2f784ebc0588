package catalog

import (
	"github.com/TATR0/bot-service/internal/domain"
)

type CitiesResponse struct {
	Cities []string `json:"cities"`
	Error  string   `json:"error,omitempty"`
}

type ServicesResponse struct {
	Services []ServiceDTO `json:"services"`
	Error    string       `json:"error,omitempty"`
}

// ServiceDTO сервис в ответе веб-форме; пустые phone/address отдаются как ""
type ServiceDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
}

func toServiceDTOs(services []*domain.Service) []ServiceDTO {
	out := make([]ServiceDTO, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceDTO{
			ID:      s.ID.String(),
			Name:    s.Name,
			Phone:   s.Phone,
			Address: s.Address,
			City:    s.City,
		})
	}
	return out
}
