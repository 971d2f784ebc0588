package texts

import (
	"fmt"
	"strings"
	"time"

	"github.com/TATR0/bot-service/internal/domain"
	"github.com/TATR0/bot-service/internal/pkg/tghtml"
	"github.com/google/uuid"
)

const timestampLayout = "02.01.2006 15:04"

func FormatAdminNotFound(username string) string {
	return fmt.Sprintf("❌ Не удалось найти пользователя <code>@%s</code>\n\n"+
		"Проверьте username или используйте user ID", tghtml.Escape(username))
}

func FormatAdminIDNotFound(id int64) string {
	return fmt.Sprintf("❌ Пользователь с ID <code>%d</code> не найден\n\n"+
		"Проверьте ID или используйте username", id)
}

func FormatRegistrationError(err error) string {
	return "❌ Ошибка при регистрации сервиса\n\n<code>" + tghtml.Escape(err.Error()) + "</code>"
}

// FormatRegistrationSuccess подтверждение регистранту со ссылкой для размещения
func FormatRegistrationSuccess(service *domain.Service, adminID int64, link string) string {
	var b strings.Builder
	b.WriteString("✅ <b>Автосервис зарегистрирован!</b>\n\n")
	fmt.Fprintf(&b, "<b>Название:</b> %s\n", tghtml.Escape(service.Name))
	fmt.Fprintf(&b, "<b>Телефон:</b> %s\n", tghtml.Escape(service.Phone))
	fmt.Fprintf(&b, "<b>Город:</b> %s\n", tghtml.Escape(service.City))
	fmt.Fprintf(&b, "<b>Адрес:</b> %s\n", tghtml.Escape(service.Address))
	fmt.Fprintf(&b, "<b>Администратор:</b> ID: %d\n\n", adminID)
	fmt.Fprintf(&b, "<b>ID сервиса:</b> <code>%s</code>\n", service.ID)
	fmt.Fprintf(&b, "<b>Ссылка для клиентов:</b>\n<code>%s</code>", link)
	return b.String()
}

func FormatAdminWelcome(service *domain.Service) string {
	return fmt.Sprintf("👋 Вас добавили администратором автосервиса!\n\n"+
		"<b>Название:</b> %s\n"+
		"<b>Телефон:</b> %s\n"+
		"<b>Город:</b> %s\n"+
		"<b>Адрес:</b> %s\n\n"+
		"Теперь вы можете управлять заявками. Нажмите /start",
		tghtml.Escape(service.Name),
		tghtml.Escape(service.Phone),
		tghtml.Escape(service.City),
		tghtml.Escape(service.Address),
	)
}

// FormatRequestNotification тело уведомления о заявке.
// Порядок блоков: клиент, автомобиль, услуга, комментарий, время, id
func FormatRequestNotification(r *domain.Request, at time.Time) string {
	var b strings.Builder
	b.WriteString("<b>═══ 🚗 НОВАЯ ЗАЯВКА ═══</b>\n\n")

	b.WriteString("<b>👤 КЛИЕНТ</b>\n")
	fmt.Fprintf(&b, "Имя: <b>%s</b>\n", tghtml.Escape(r.ClientName))
	fmt.Fprintf(&b, "Телефон: <code>%s</code>\n", tghtml.Escape(r.Phone))
	fmt.Fprintf(&b, "Telegram: <code>%d</code>\n\n", r.ClientID)

	b.WriteString("<b>🚙 АВТОМОБИЛЬ</b>\n")
	fmt.Fprintf(&b, "Марка: <b>%s</b>\n", tghtml.Escape(r.Brand))
	fmt.Fprintf(&b, "Модель: <b>%s</b>\n", tghtml.Escape(r.Model))
	fmt.Fprintf(&b, "Гос номер: <code>%s</code>\n\n", tghtml.Escape(r.Plate))

	b.WriteString("<b>🔧 УСЛУГА</b>\n")
	fmt.Fprintf(&b, "Тип работы: %s\n", tghtml.Escape(domain.ServiceTypeLabel(r.ServiceType)))
	fmt.Fprintf(&b, "Срочность: %s\n", tghtml.Escape(domain.UrgencyLabel(r.Urgency)))

	if r.Comment != "" {
		fmt.Fprintf(&b, "\n<b>💬 Комментарий</b>\n<i>%s</i>\n", tghtml.Escape(r.Comment))
	}

	fmt.Fprintf(&b, "\n⏰ %s\n", at.Format(timestampLayout))
	fmt.Fprintf(&b, "<b>ID заявки:</b> <code>%s</code>", r.ID)
	return b.String()
}

func FormatRequestAccepted(requestID uuid.UUID) string {
	return fmt.Sprintf("✅ <b>Заявка отправлена!</b>\n\n"+
		"📞 Администратор свяжется с вами в ближайшее время\n\n"+
		"<b>Номер заявки:</b> <code>%s</code>", requestID)
}

// AppendStatus дописывает статус к HTML исходного сообщения администратора
func AppendStatus(html string, d domain.Disposition) string {
	return html + "\n\n<b>📌 Статус:</b> " + d.Label()
}

func FormatClientStatus(requestID uuid.UUID, d domain.Disposition) string {
	return fmt.Sprintf("📌 Статус вашей заявки <code>%s</code> обновлён\n\n%s", requestID, d.Label())
}

// ServiceRequests заявки одного сервиса для "Мои заявки"
type ServiceRequests struct {
	Service  *domain.Service
	Requests []*domain.Request
}

func FormatMyRequests(items []ServiceRequests) string {
	var b strings.Builder
	b.WriteString(MyRequestsHeader)
	for _, item := range items {
		name := tghtml.Escape(item.Service.Name)
		if len(item.Requests) == 0 {
			fmt.Fprintf(&b, "<b>%s</b> - нет заявок\n", name)
			continue
		}
		fmt.Fprintf(&b, "<b>%s</b>\n", name)
		for _, r := range item.Requests {
			fmt.Fprintf(&b, "  • %s - %s\n", tghtml.Escape(r.ClientName), r.Status.Label())
		}
	}
	return b.String()
}

func FormatAboutServices(services []*domain.Service, linkFor func(uuid.UUID) string) string {
	var b strings.Builder
	b.WriteString(AboutServicesHeader)
	for _, s := range services {
		fmt.Fprintf(&b, "<b>Название:</b> %s\n", tghtml.Escape(s.Name))
		fmt.Fprintf(&b, "<b>Телефон:</b> %s\n", tghtml.Escape(s.Phone))
		if s.Address != "" {
			fmt.Fprintf(&b, "<b>Адрес:</b> %s\n", tghtml.Escape(s.Address))
		}
		fmt.Fprintf(&b, "<b>ID:</b> <code>%s</code>\n", s.ID)
		fmt.Fprintf(&b, "<b>Ссылка на размещение:</b>\n<code>%s</code>\n\n", linkFor(s.ID))
	}
	return b.String()
}
