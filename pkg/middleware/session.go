package middleware

import (
	"context"
	"net/http"

	"github.com/vfg2006/ads-excel-utilities/infrastructure/session"
	"github.com/vfg2006/ads-excel-utilities/pkg/apiErrors"
	"github.com/vfg2006/ads-excel-utilities/pkg/log"
)

type contextKey string

const ContextKeySession contextKey = "session"

// Session associa a requisição à sessão do navegador. Sem cookie válido (ausente,
// expirado ou de uma sessão já removida) uma sessão nova é criada. O cookie é
// reassinado a cada requisição, então a validade conta a partir do último uso.
func Session(store *session.Store, tokens *session.Tokens, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := log.ForContext(r.Context())

			sess := resolveSession(r, store, tokens, cookieName)
			if sess == nil {
				created, err := store.Create()
				if err != nil {
					logger.WithError(err).Error("session: could not create session")
					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao criar a sessão", nil)
					return
				}
				sess = created
			}

			token, err := tokens.Sign(sess.ID)
			if err != nil {
				logger.WithError(err).Error("session: could not sign session token")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao assinar a sessão", nil)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(tokens.TTL().Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				Secure:   r.TLS != nil,
			})

			ctx := context.WithValue(r.Context(), ContextKeySession, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveSession(r *http.Request, store *session.Store, tokens *session.Tokens, cookieName string) *session.Session {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return nil
	}

	id, err := tokens.Parse(cookie.Value)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Debug("session: discarding invalid cookie")
		return nil
	}

	sess, err := store.Get(id)
	if err != nil {
		return nil
	}

	return sess
}

// SessionFromContext devolve a sessão colocada no contexto pelo middleware Session
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(ContextKeySession).(*session.Session)
	return sess, ok && sess != nil
}
