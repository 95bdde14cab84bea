package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hris-salary-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-salary-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/hrapi"
	"github.com/go-chi/jwtauth/v5"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// ForwardBearer passes the caller's bearer token on to HR backend calls made for this request
func ForwardBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := jwtauth.TokenFromHeader(r); token != "" {
			r = r.WithContext(hrapi.WithBearerToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}
