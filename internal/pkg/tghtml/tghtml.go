// Package tghtml восстанавливает HTML-разметку сообщения Telegram по text + entities.
// Смещения entities считаются в UTF-16 кодовых единицах
package tghtml

import (
	"html"
	"sort"
	"strings"

	"github.com/TATR0/bot-service/internal/domain"
)

// Escape экранирует текст для parse_mode=HTML
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		writeEscaped(&b, r)
	}
	return b.String()
}

func writeEscaped(b *strings.Builder, r rune) {
	switch r {
	case '&':
		b.WriteString("&amp;")
	case '<':
		b.WriteString("&lt;")
	case '>':
		b.WriteString("&gt;")
	default:
		b.WriteRune(r)
	}
}

type span struct {
	start, end int
	open       string
	close      string
}

// FromEntities собирает HTML из текста и entities. Неизвестные типы выводятся как обычный текст
func FromEntities(text string, entities []domain.Entity) string {
	spans := make([]span, 0, len(entities))
	for _, e := range entities {
		if e.Length <= 0 {
			continue
		}
		open, closeTag, ok := tags(e)
		if !ok {
			continue
		}
		spans = append(spans, span{start: e.Offset, end: e.Offset + e.Length, open: open, close: closeTag})
	}
	// внешние раньше вложенных
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end > spans[j].end
	})

	var b strings.Builder
	var stack []span
	next := 0
	pos := 0

	emit := func(pos int) {
		for len(stack) > 0 && stack[len(stack)-1].end <= pos {
			b.WriteString(stack[len(stack)-1].close)
			stack = stack[:len(stack)-1]
		}
		for next < len(spans) && spans[next].start <= pos {
			b.WriteString(spans[next].open)
			stack = append(stack, spans[next])
			next++
		}
	}

	for _, r := range text {
		emit(pos)
		writeEscaped(&b, r)
		pos += utf16Len(r)
	}

	// хвост: закрываем всё, включая entities за пределами текста
	for len(stack) > 0 {
		b.WriteString(stack[len(stack)-1].close)
		stack = stack[:len(stack)-1]
	}

	return b.String()
}

func utf16Len(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}

func tags(e domain.Entity) (string, string, bool) {
	switch e.Type {
	case "bold":
		return "<b>", "</b>", true
	case "italic":
		return "<i>", "</i>", true
	case "underline":
		return "<u>", "</u>", true
	case "strikethrough":
		return "<s>", "</s>", true
	case "spoiler":
		return "<tg-spoiler>", "</tg-spoiler>", true
	case "code":
		return "<code>", "</code>", true
	case "pre":
		return "<pre>", "</pre>", true
	case "blockquote":
		return "<blockquote>", "</blockquote>", true
	case "expandable_blockquote":
		return "<blockquote expandable>", "</blockquote>", true
	case "text_link":
		if e.URL == nil || *e.URL == "" {
			return "", "", false
		}
		return `<a href="` + html.EscapeString(*e.URL) + `">`, "</a>", true
	default:
		return "", "", false
	}
}
