package templates

import (
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

type LayoutProps struct {
	Title       string
	SiteName    string
	CurrentUser string
	IsAdmin     bool
	Notice      string
}

func NavbarComponent(props LayoutProps) g.Node {
	return Nav(Class("nav"),
		Div(Class("nav-left"),
			Div(Class("brand"), A(Href("/"), g.Text(props.SiteName))),
			Div(Class("nav-links"),
				A(Href("/about"), g.Text("About")),
				A(Href("/contact"), g.Text("Contact")),
				g.If(props.IsAdmin,
					A(Href("/new-post"), g.Text("New Post")),
				),
			),
		),
		Div(Class("nav-links nav-right"),
			g.If(props.CurrentUser == "",
				Div(
					A(Href("/login"), g.Text("Login")),
					A(Href("/register"), g.Text("Register")),
				),
			),
			g.If(props.CurrentUser != "",
				Div(Class("row"),
					Div(Class("col"), g.Textf("Logged in as %s", props.CurrentUser)),
					Div(Class("col"), A(Href("/logout"), g.Text("Logout"))),
				)),
		),
	)
}

func NoticeComponent(notice string) g.Node {
	return g.If(notice != "",
		Div(Class("notice"), g.Text(notice)),
	)
}

func FooterComponent() g.Node {
	return Footer(Class("footer"),
		P(Class("with-love"),
			Small(g.Text("A quiet corner of the internet for words worth keeping.")),
		),
	)
}

func Layout(props LayoutProps, children ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),

				Link(Rel("stylesheet"), Href("/assets/css/main.css")),

				TitleEl(g.Text(props.Title)),
			),
			Body(
				Div(Class("container"), Style("margin-top: 1.5em;"),
					NavbarComponent(props),
					NoticeComponent(props.Notice),
					Main(
						g.Group(children),
					),
				),
				FooterComponent(),
			),
		),
	)
}
