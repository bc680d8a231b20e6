package templates

import (
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

func RegisterPage() g.Node {
	return Section(Class("auth-form"),
		H1(g.Text("Register")),
		Form(Method("post"), Action("/register"),
			Label(For("name"), g.Text("Name")),
			Input(ID("name"), Type("text"), Name("name"), Required()),

			Label(For("email"), g.Text("Email")),
			Input(ID("email"), Type("email"), Name("email"), Required()),

			Label(For("password"), g.Text("Password")),
			Input(ID("password"), Type("password"), Name("password"), Required()),

			Button(Type("submit"), g.Text("Sign Up")),
		),
		P(
			g.Text("Already have an account? "),
			A(Href("/login"), g.Text("Log in instead.")),
		),
	)
}

func LoginPage() g.Node {
	return Section(Class("auth-form"),
		H1(g.Text("Login")),
		Form(Method("post"), Action("/login"),
			Label(For("email"), g.Text("Email")),
			Input(ID("email"), Type("email"), Name("email"), Required()),

			Label(For("password"), g.Text("Password")),
			Input(ID("password"), Type("password"), Name("password"), Required()),

			Button(Type("submit"), g.Text("Log In")),
		),
		P(
			g.Text("New around here? "),
			A(Href("/register"), g.Text("Register instead.")),
		),
	)
}
