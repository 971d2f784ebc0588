package autoservice

import (
	"github.com/TATR0/bot-service/internal/domain"
	"github.com/TATR0/bot-service/internal/usecases/autoservice/texts"
	"github.com/google/uuid"
)

func webAppButton(text, url string) map[string]interface{} {
	return map[string]interface{}{
		"text":    text,
		"web_app": map[string]interface{}{"url": url},
	}
}

// startKeyboard кнопка веб-формы без выбранного сервиса
func (s *Service) startKeyboard() map[string]interface{} {
	return map[string]interface{}{
		"keyboard": [][]map[string]interface{}{
			{webAppButton(texts.ButtonBookService, s.WebAppURL)},
		},
		"resize_keyboard": true,
	}
}

// serviceKeyboard кнопка веб-формы с предвыбранным сервисом
func (s *Service) serviceKeyboard(serviceID string) map[string]interface{} {
	return map[string]interface{}{
		"keyboard": [][]map[string]interface{}{
			{webAppButton(texts.ButtonBookOnline, domain.WebAppServiceURL(s.WebAppURL, serviceID))},
		},
		"resize_keyboard":   true,
		"one_time_keyboard": true,
	}
}

func adminMenuKeyboard() map[string]interface{} {
	return map[string]interface{}{
		"keyboard": [][]map[string]interface{}{
			{{"text": domain.MenuMyRequests}},
			{{"text": domain.MenuRegisterService}},
			{{"text": domain.MenuAboutService}},
		},
		"resize_keyboard": true,
	}
}

// statusKeyboard inline-кнопки смены статуса: две в первом ряду, отказ во втором
func statusKeyboard(requestID uuid.UUID) map[string]interface{} {
	button := func(d domain.Disposition) map[string]interface{} {
		return map[string]interface{}{
			"text":          d.Label(),
			"callback_data": domain.FormatStatusAction(d, requestID),
		}
	}

	return map[string]interface{}{
		"inline_keyboard": [][]map[string]interface{}{
			{button(domain.DispositionAccepted), button(domain.DispositionCalled)},
			{button(domain.DispositionRejected)},
		},
	}
}
