package texts

// Старт и меню
const (
	StartServiceLink = "🔧 <b>Добро пожаловать в автосервис!</b>\n\n" +
		"Чтобы отправить заявку на обслуживание, нажмите кнопку ниже 👇"
	StartAdmin  = "👋 <b>Добро пожаловать, администратор!</b>"
	StartClient = "🚗 <b>Добро пожаловать в систему записи автосервиса!</b>\n\n" +
		"🔧 Чтобы подключить автосервис — нажмите /register_service"

	UnknownCommand = "❓ Неизвестная команда\n\n" +
		"Используйте /start для начала"

	NoServices = "❌ У вас нет зарегистрированных сервисов\n\n" +
		"Используйте команду /register_service для регистрации"
	NoServicesShort = "❌ У вас нет сервисов"

	MyRequestsHeader    = "<b>📋 Мои заявки:</b>\n\n"
	AboutServicesHeader = "<b>ℹ️ Информация о моих сервисах:</b>\n\n"
	LoadError           = "❌ Не удалось загрузить данные. Попробуйте позже"
)

// Кнопки
const (
	ButtonBookService = "🚗 Записаться в автосервис"
	ButtonBookOnline  = "🚗 Записаться онлайн"
)

// Регистрация сервиса
const (
	RegisterStart = "🚗 <b>Регистрация автосервиса</b>\n\n" +
		"Введите название вашего автосервиса:"
	AskPhone = "📞 Введите номер телефона автосервиса:\n\n" +
		"<i>Пример: +7 (999) 123-45-67</i>"
	AskCity = "🏙 Введите город, в котором находится автосервис:\n\n" +
		"<i>Пример: Москва</i>"
	AskLocation = "📍 Введите адрес автосервиса (улица, дом):\n\n" +
		"<i>Пример: ул. Пушкина, д. 10</i>"
	AskAdmin = "👤 <b>Введите администратора сервиса:</b>\n\n" +
		"Способы ввода:\n" +
		"• <code>@username</code> (если есть username)\n" +
		"• <code>123456789</code> (user ID из @userinfobot)\n\n" +
		"<i>Как найти user ID?</i>\n" +
		"Напишите боту @userinfobot и он выведет ваш ID"

	InvalidName     = "❌ Название должно быть не менее 3 символов"
	InvalidPhone    = "❌ Некорректный номер телефона. Попробуйте ещё раз"
	InvalidCity     = "❌ Название города должно быть не менее 2 символов"
	InvalidLocation = "❌ Адрес должен быть не менее 5 символов"
	InvalidAdmin    = "❌ Некорректный формат\n\n" +
		"Используйте:\n" +
		"• <code>@username</code>\n" +
		"• <code>123456789</code> (только цифры для ID)"
)

// Заявки
const (
	RequestParseError = "❌ Ошибка при обработке данных"
	RequestSaveError  = "❌ Ошибка при отправке заявки. Попробуйте позже"
	NoServicePrefix   = "⚠️ <b>ЗАЯВКА БЕЗ СЕРВИСА</b>\n\n"

	StatusUpdated     = "✅ Статус обновлён"
	StatusUpdateError = "❌ Ошибка при обновлении"
	StatusNotFound    = "❌ Заявка не найдена"
)
