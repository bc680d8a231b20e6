package templates

import (
	"bramble/constants"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

func AboutPage() g.Node {
	return Section(Class("static-page"),
		H1(g.Text("About")),
		P(g.Textf("%s is a small personal blog.", constants.APP_NAME)),
		P(g.Text("The site owner writes the posts; anyone with an account can join the conversation in the comments.")),
	)
}

func ContactPage() g.Node {
	return Section(Class("static-page"),
		H1(g.Text("Contact")),
		P(
			g.Text("Want to get in touch? Say hi at "),
			A(Href("mailto:hello@bramble.blog"), g.Text("hello@bramble.blog")),
			g.Text("."),
		),
	)
}
