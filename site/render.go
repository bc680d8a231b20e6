package site

import (
	"log"
	"net/http"

	"bramble/constants"
	"bramble/templates"

	g "github.com/maragudk/gomponents"
)

func renderPage(w http.ResponseWriter, r *http.Request, title string, children ...g.Node) {
	props := templates.LayoutProps{
		Title:    title,
		SiteName: constants.APP_NAME,
		Notice:   popFlash(w, r),
	}

	if user := getSignedInUserOrNil(r); user != nil {
		props.CurrentUser = user.Name
		props.IsAdmin = user.IsAdmin()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Layout(props, children...).Render(w); err != nil {
		log.Printf("Template render error: %v", err)
	}
}

func renderRegisterPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, "Register", templates.RegisterPage())
}

func renderLoginPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, "Login", templates.LoginPage())
}
