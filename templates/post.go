package templates

import (
	"fmt"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

type PostView struct {
	ID         uint
	Title      string
	Subtitle   string
	Date       string
	Body       string
	ImgURL     string
	AuthorName string
}

type CommentView struct {
	AuthorName string
	AvatarURL  string
	Text       string
}

func PostPage(post PostView, comments []CommentView) g.Node {
	return Article(Class("post"),
		g.If(post.ImgURL != "",
			Img(Class("cover"), Src(post.ImgURL), Alt(post.Title)),
		),
		H1(g.Text(post.Title)),
		H3(Class("subtitle"), g.Text(post.Subtitle)),
		P(Class("meta"),
			g.Textf("Posted on %s", post.Date),
			g.If(post.AuthorName != "", g.Textf(" by %s", post.AuthorName)),
		),
		Div(Class("post-body"),
			Markdown(post.Body),
		),
		Hr(),
		CommentsComponent(post.ID, comments),
	)
}

func CommentsComponent(postID uint, comments []CommentView) g.Node {
	return Section(Class("comments"),
		H4(g.Textf("Comments (%d)", len(comments))),
		g.Group(g.Map(comments, func(comment CommentView) g.Node {
			return Div(Class("comment"),
				g.If(comment.AvatarURL != "",
					Img(Class("avatar"), Src(comment.AvatarURL), Alt(comment.AuthorName)),
				),
				Div(Class("comment-body"),
					Strong(g.Text(comment.AuthorName)),
					P(g.Text(comment.Text)),
				),
			)
		})),
		Form(Class("comment-form"), Method("post"), Action(fmt.Sprintf("/post/%d", postID)),
			Label(For("comment"), g.Text("Leave a comment")),
			Textarea(ID("comment"), Name("comment"), Rows("4"), Required()),
			Button(Type("submit"), g.Text("Submit Comment")),
		),
	)
}
