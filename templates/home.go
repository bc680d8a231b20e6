package templates

import (
	"fmt"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

type PostCard struct {
	ID         uint
	Title      string
	Subtitle   string
	Date       string
	AuthorName string
}

func HomePage(posts []PostCard) g.Node {
	return Section(Class("post-list"),
		g.If(len(posts) == 0,
			P(Class("empty"), g.Text("Nothing here yet. Check back soon!")),
		),
		g.Group(g.Map(posts, func(post PostCard) g.Node {
			return Article(Class("post-card"),
				H2(A(Href(fmt.Sprintf("/post/%d", post.ID)), g.Text(post.Title))),
				H3(Class("subtitle"), g.Text(post.Subtitle)),
				P(Class("meta"),
					g.Textf("Posted on %s", post.Date),
					g.If(post.AuthorName != "", g.Textf(" by %s", post.AuthorName)),
				),
			)
		})),
	)
}
