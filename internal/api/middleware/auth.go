package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Заголовки identity, проставляемые внешним слоем аутентификации
const (
	HeaderUserName      = "X-User-Name"
	HeaderUserPhone     = "X-User-Phone"
	HeaderUserEmail     = "X-User-Email"
	HeaderUserInstagram = "X-User-Instagram"
	HeaderSessionID     = "X-Session-ID"
)

const msgUnauthorized = "требуется аутентификация"

type contextKey string

const (
	identityKey  contextKey = "identity"
	sessionIDKey contextKey = "sessionID"
)

// Auth требует identity в заголовках запроса и кладет её в контекст.
// Аутентификация и хранение учетных данных — вне сервиса; сюда приходит
// уже разрешенная identity.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := identityFromHeaders(r)
		if identity == nil {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		ctx = context.WithValue(ctx, sessionIDKey, sessionIDFromRequest(r, identity))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithIdentity кладет identity в контекст, если она есть в заголовках,
// но не требует её (для публичных маршрутов).
func WithIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if identity := identityFromHeaders(r); identity != nil {
			ctx = context.WithValue(ctx, identityKey, identity)
			ctx = context.WithValue(ctx, sessionIDKey, sessionIDFromRequest(r, identity))
		} else {
			ctx = context.WithValue(ctx, sessionIDKey, sessionIDFromRequest(r, nil))
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext возвращает identity запроса, если она есть
func IdentityFromContext(ctx context.Context) (*domain.UserIdentity, bool) {
	identity, ok := ctx.Value(identityKey).(*domain.UserIdentity)
	return identity, ok
}

// SessionIDFromContext возвращает идентификатор клиентской сессии.
// Пустая строка означает анонимную сессию без оверлея.
func SessionIDFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(sessionIDKey).(string)
	return sessionID
}

func identityFromHeaders(r *http.Request) *domain.UserIdentity {
	name := r.Header.Get(HeaderUserName)
	phone := r.Header.Get(HeaderUserPhone)
	if name == "" || phone == "" {
		return nil
	}

	identity := &domain.UserIdentity{Name: name, Phone: phone}
	if email := r.Header.Get(HeaderUserEmail); email != "" {
		identity.Email = &email
	}
	if instagram := r.Header.Get(HeaderUserInstagram); instagram != "" {
		identity.Instagram = &instagram
	}
	return identity
}

// sessionIDFromRequest берет явный X-Session-ID, иначе телефон identity
func sessionIDFromRequest(r *http.Request, identity *domain.UserIdentity) string {
	if sessionID := r.Header.Get(HeaderSessionID); sessionID != "" {
		return sessionID
	}
	if identity != nil {
		return identity.Phone
	}
	return ""
}
