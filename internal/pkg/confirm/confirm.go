// Package confirm передает решение пользователя по деструктивному
// действию через контекст запроса. Контроллер спрашивает подтверждение
// синхронно, а единственный пользовательский вход -- HTTP-запрос,
// поэтому ответ кладется в контекст заранее.
package confirm

import "context"

type decisionKey struct{}

// WithDecision кладет ответ пользователя в контекст.
func WithDecision(ctx context.Context, confirmed bool) context.Context {
	return context.WithValue(ctx, decisionKey{}, confirmed)
}

// Decision достает ответ пользователя. Отсутствие ответа -- отказ.
func Decision(ctx context.Context) bool {
	confirmed, ok := ctx.Value(decisionKey{}).(bool)
	return ok && confirmed
}

// ContextConfirmer отвечает на запрос подтверждения решением из
// контекста запроса.
type ContextConfirmer struct{}

func NewContextConfirmer() *ContextConfirmer {
	return &ContextConfirmer{}
}

func (ContextConfirmer) Confirm(ctx context.Context, _ string) bool {
	return Decision(ctx)
}
