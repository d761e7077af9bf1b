package http

import (
	"net/http"

	"github.com/marcusyoung/nc-news-api/internal/news/domain"
	"github.com/marcusyoung/nc-news-api/internal/news/service"
	"github.com/marcusyoung/nc-news-api/pkg/httpx"
)

type UsersHandler struct {
	UserService    *service.UserService
	SessionService *service.SessionService
}

func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"users": users})
}

func (h *UsersHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username  string `json:"username"`
		Password  string `json:"password"`
		Name      string `json:"name"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, r, err)
		return
	}

	user, err := h.UserService.Signup(r.Context(), body.Username, body.Password, body.Name, body.AvatarURL)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{"user": user})
}

func (h *UsersHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, r, err)
		return
	}

	session, err := h.SessionService.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	setSessionCookies(w, r, session)
	httpx.NoCache(w)
	httpx.WriteMsg(w, http.StatusOK, "Login successful")
}

// HandleLogout only instructs the client to discard both cookies. Nothing
// is invalidated server-side; an already issued token stays valid until its
// expiry.
func (h *UsersHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookies(w, r)
	httpx.NoCache(w)
	httpx.WriteMsg(w, http.StatusCreated, "Successfully logged out")
}

// setSessionCookies writes the session credential pair: the HttpOnly token
// cookie and the script-readable CSRF cookie whose value the client must
// echo back in the X-XSRF-TOKEN header on mutating requests.
func setSessionCookies(w http.ResponseWriter, r *http.Request, s domain.Session) {
	secure := r.TLS != nil
	http.SetCookie(w, &http.Cookie{
		Name:     httpx.SessionCookieName,
		Value:    s.Token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     httpx.CSRFCookieName,
		Value:    s.CSRFToken,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: false,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookies(w http.ResponseWriter, r *http.Request) {
	secure := r.TLS != nil
	for _, name := range []string{httpx.SessionCookieName, httpx.CSRFCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: name == httpx.SessionCookieName,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
