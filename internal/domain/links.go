package domain

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// ServiceTokenPrefix префикс параметра /start для ссылки на сервис
const ServiceTokenPrefix = "SVC_"

// ServiceDeepLink ссылка вида https://t.me/<bot>?start=SVC_<id> для размещения у сервиса
func ServiceDeepLink(botUsername string, serviceID uuid.UUID) string {
	return fmt.Sprintf("https://t.me/%s?start=%s%s", strings.TrimPrefix(botUsername, "@"), ServiceTokenPrefix, serviceID)
}

// ParseServiceToken достаёт id сервиса из параметра /start
func ParseServiceToken(token string) (string, bool) {
	if !strings.HasPrefix(token, ServiceTokenPrefix) {
		return "", false
	}
	id := strings.TrimPrefix(token, ServiceTokenPrefix)
	if id == "" {
		return "", false
	}
	return id, true
}

// WebAppServiceURL адрес веб-формы с предвыбранным сервисом
func WebAppServiceURL(baseURL string, serviceID string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Sprintf("%s?service_id=%s", baseURL, url.QueryEscape(serviceID))
	}
	q := u.Query()
	q.Set("service_id", serviceID)
	u.RawQuery = q.Encode()
	return u.String()
}
