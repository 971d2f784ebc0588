package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const statusActionPrefix = "status"

// FormatStatusAction callback_data для кнопки смены статуса: status:<disposition>:<request-id>
func FormatStatusAction(d Disposition, requestID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", statusActionPrefix, d, requestID)
}

// IsStatusAction проверяет, относится ли callback_data к смене статуса
func IsStatusAction(data string) bool {
	return strings.HasPrefix(data, statusActionPrefix+":")
}

// ParseStatusAction разбирает callback_data вида status:<disposition>:<request-id>
func ParseStatusAction(data string) (Disposition, uuid.UUID, error) {
	parts := strings.SplitN(data, ":", 3)
	if len(parts) != 3 || parts[0] != statusActionPrefix {
		return "", uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidStatusPayload, data)
	}

	disposition, err := ParseDisposition(parts[1])
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidStatusPayload, err)
	}

	requestID, err := uuid.Parse(parts[2])
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("%w: bad request id %q", ErrInvalidStatusPayload, parts[2])
	}

	return disposition, requestID, nil
}
