package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// NotFound renders the page served for unknown paths.
func NotFound(site Site) templ.Component {
	return statusPage(site, "Page not found", "The page you are looking for does not exist.")
}

// ServerError renders the page served when a request fails unexpectedly.
func ServerError(site Site) templ.Component {
	return statusPage(site, "Something went wrong", "Please try again in a moment.")
}

func statusPage(site Site, title, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		home := site.URL
		if home == "" {
			home = "/"
		}
		_, err := io.WriteString(w, "<!doctype html><html lang=\"en\"><head><meta charset=\"utf-8\">"+
			"<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">"+
			"<title>"+templ.EscapeString(title+" | "+site.Name)+"</title></head>"+
			"<body class=\"status-page\"><main class=\"container\">"+
			"<h1>"+templ.EscapeString(title)+"</h1>"+
			"<p>"+templ.EscapeString(message)+"</p>"+
			"<a class=\"btn-text\" href=\""+templ.EscapeString(home)+"\">Back to "+templ.EscapeString(site.Name)+"</a>"+
			"</main></body></html>")
		return err
	})
}
