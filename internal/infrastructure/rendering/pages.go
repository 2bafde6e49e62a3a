package rendering

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
)

// ErrUnknownTopic is returned for an info topic outside the fixed table
var ErrUnknownTopic = errors.New("unknown info topic")

// infoTopics maps each info topic to its page title
var infoTopics = map[string]string{
	"mesh":          "Mesh",
	"model":         "Earth Model",
	"output_format": "Output Format",
	"movie":         "Movies",
}

// LoginPage is the data of the login form
type LoginPage struct {
	Action      string
	RegisterURL string
	Username    string
	Next        string
	Error       string
}

type pageData struct {
	Title string
	*LoginPage
}

// HTMLPageRenderer renders the static info pages and the login page
type HTMLPageRenderer struct {
	pages map[string]*template.Template
}

// NewHTMLPageRenderer parses every page together with the shared layout
func NewHTMLPageRenderer() (*HTMLPageRenderer, error) {
	names := make([]string, 0, len(infoTopics)+1)
	for topic := range infoTopics {
		names = append(names, topic+"_info")
	}
	names = append(names, "login")

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		page, err := template.ParseFS(templateFS, "templates/pages/layout.html.tmpl", "templates/pages/"+name+".html.tmpl")
		if err != nil {
			return nil, fmt.Errorf("failed to parse page %s: %w", name, err)
		}
		pages[name] = page
	}
	return &HTMLPageRenderer{pages: pages}, nil
}

// RenderInfo writes the page of topic, or returns ErrUnknownTopic
func (r *HTMLPageRenderer) RenderInfo(w io.Writer, topic string) error {
	title, ok := infoTopics[topic]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTopic, topic)
	}
	return r.execute(w, topic+"_info", pageData{Title: title})
}

// RenderLogin writes the login form
func (r *HTMLPageRenderer) RenderLogin(w io.Writer, page *LoginPage) error {
	return r.execute(w, "login", pageData{Title: "Log in", LoginPage: page})
}

func (r *HTMLPageRenderer) execute(w io.Writer, name string, data pageData) error {
	var buf bytes.Buffer
	if err := r.pages[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render page %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
