package templates

import (
	"bramble/database"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// PostFormPage is the shared create/edit form. A nil post renders the
// form empty; otherwise the fields are prefilled.
func PostFormPage(action string, post *database.Post) g.Node {
	heading := "New Post"
	title, subtitle, imgURL, body := "", "", "", ""
	if post != nil {
		heading = "Edit Post"
		title = post.Title
		subtitle = post.Subtitle
		imgURL = post.ImgURL
		body = post.Body
	}

	return Section(Class("post-editor"),
		H1(g.Text(heading)),
		Form(Method("post"), Action(action),
			Label(For("title"), g.Text("Title")),
			Input(ID("title"), Type("text"), Name("title"), Value(title), Required()),

			Label(For("subtitle"), g.Text("Subtitle")),
			Input(ID("subtitle"), Type("text"), Name("subtitle"), Value(subtitle)),

			Label(For("img_url"), g.Text("Cover Image URL")),
			Input(ID("img_url"), Type("url"), Name("img_url"), Value(imgURL)),

			Label(For("body"), g.Text("Body (markdown)")),
			Textarea(ID("body"), Name("body"), Rows("16"), g.Text(body)),

			Button(Type("submit"), g.Text("Save Post")),
		),
	)
}
