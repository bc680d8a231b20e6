package site

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log"
	"net/http"

	"bramble/database"

	"golang.org/x/crypto/bcrypt"
)

type userContextKey string

const authenticatedUserContextKey = userContextKey("authenticated_user")
const SessionTokenCookieName = "session_token"

func getSignedInUserOrNil(r *http.Request) *database.User {
	user, _ := r.Context().Value(authenticatedUserContextKey).(*database.User)
	return user
}

func getSignedInUserOrFail(r *http.Request) *database.User {
	user := getSignedInUserOrNil(r)
	if user == nil {
		// unreachable behind the auth middleware; Recoverer turns this
		// into a 500 instead of serving as the wrong identity
		panic("expected a signed in user on a protected route")
	}
	return user
}

func generateAuthToken() (string, error) {
	const tokenLength = 32
	tokenBytes := make([]byte, tokenLength)
	_, err := rand.Read(tokenBytes)
	if err != nil {
		return "", err
	}
	token := base64.URLEncoding.EncodeToString(tokenBytes)
	return token, nil
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionTokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionTokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// startSession rotates the user's session token, persists it and hands
// it to the client. Any previously issued cookie stops working.
func startSession(w http.ResponseWriter, user *database.User) error {
	token, err := generateAuthToken()
	if err != nil {
		return err
	}

	user.SessionToken = token
	if err := database.SaveUser(user); err != nil {
		return err
	}

	setSessionCookie(w, token)
	return nil
}

// TryPutUserInContextMiddleware resolves the session cookie to a user
// row and stores it in the request context. Anonymous requests pass
// through untouched; stale cookies are cleared.
func TryPutUserInContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionTokenCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := database.GetUserBySessionToken(cookie.Value)
		if err != nil {
			clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), authenticatedUserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuthenticatedMiddleware sends anonymous visitors to the login
// form with a notice instead of completing the request.
func RequireAuthenticatedMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if getSignedInUserOrNil(r) == nil {
			setFlash(w, "You need to log in or register first")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdminMiddleware is a hard stop: anyone but the site owner
// gets a 403, with no redirect.
func RequireAdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := getSignedInUserOrNil(r)
		if user == nil || !user.IsAdmin() {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		if getSignedInUserOrNil(r) != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		renderRegisterPage(w, r)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	name := r.FormValue("name")

	if email == "" || password == "" || name == "" {
		setFlash(w, "Name, email and password are all required")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Error creating account", http.StatusInternalServerError)
		return
	}

	user, err := database.CreateUser(email, passwordHash, name)
	if errors.Is(err, database.ErrDuplicateEmail) {
		setFlash(w, "You've already signed up with that email, log in instead")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err != nil {
		http.Error(w, "Error creating account", http.StatusInternalServerError)
		return
	}

	if err := startSession(w, user); err != nil {
		http.Error(w, "Error creating account", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		if getSignedInUserOrNil(r) != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		renderLoginPage(w, r)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := database.GetUserByEmail(email)
	if err == nil && bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		err = database.ErrWrongPassword
	}

	switch {
	case errors.Is(err, database.ErrUnknownEmail):
		setFlash(w, "That email doesn't exist, please try again")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	case errors.Is(err, database.ErrWrongPassword):
		setFlash(w, "Incorrect password, try again")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	case err != nil:
		http.Error(w, "Error signing in", http.StatusInternalServerError)
		return
	}

	if err := startSession(w, user); err != nil {
		http.Error(w, "Error signing in", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func Logout(w http.ResponseWriter, r *http.Request) {
	user := getSignedInUserOrFail(r)

	user.SessionToken = ""
	if err := database.SaveUser(user); err != nil {
		log.Printf("Failed to clear session token for user %d: %v", user.ID, err)
	}

	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
