package constants

const (
	// public URL
	APP_NAME           = "Bramble"
	PUBLIC_URL         = "https://bramble.blog"
	MAX_POSTS_TO_SHOW  = 2000
	MAX_POST_LENGTH    = 20000
	MAX_COMMENT_LENGTH = 2000

	// display format for post publish dates, e.g. "August 28, 2026"
	POST_DATE_FORMAT = "January 02, 2006"
)
