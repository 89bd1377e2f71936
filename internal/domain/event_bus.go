package domain

import "log"

// EventHandler - синхронный обработчик доменного события
type EventHandler func(Event)

// Ограничение глубины каскада событий: мутация может породить событие,
// обработчик которого делает новые мутации (merge -> undersized -> merge...).
// Без ограничения патологическая конфигурация рекурсирует бесконечно.
const maxCascadeDepth = 8

// EventBus - синхронная шина доменных событий
// Экземпляр создается в композиционном корне и передается по ссылке;
// рассчитан на однопоточный доступ в рамках одного запроса
type EventBus struct {
	handlers map[string][]EventHandler
	depth    int
}

// NewEventBus создает новую шину событий
func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[string][]EventHandler),
	}
}

// Subscribe регистрирует обработчик для события с указанным именем
// Обработчики вызываются в порядке регистрации
func (b *EventBus) Subscribe(eventName string, handler EventHandler) {
	b.handlers[eventName] = append(b.handlers[eventName], handler)
}

// Publish синхронно вызывает все обработчики события
// Ошибки обработчиков не возвращаются издателю; обработчик сам
// отвечает за свои ошибки
func (b *EventBus) Publish(event Event) {
	if b.depth >= maxCascadeDepth {
		log.Printf("[EventBus] cascade depth limit reached, dropping event %s (%s)",
			event.EventName(), event.EventID())
		return
	}

	b.depth++
	defer func() { b.depth-- }()

	for _, handler := range b.handlers[event.EventName()] {
		handler(event)
	}
}

// ClearHandlers удаляет все подписки (используется в тестах)
func (b *EventBus) ClearHandlers() {
	b.handlers = make(map[string][]EventHandler)
}
