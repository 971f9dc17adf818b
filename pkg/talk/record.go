// Package talk holds the conference talk domain model and the assembler
// that builds normalized talk records from raw page field extractions.
package talk

import (
	"encoding/json"
	"fmt"
)

// BodyElement is one entry of a talk body. It is a closed union:
// Heading, Paragraph, or Image.
type BodyElement interface {
	bodyElement()
}

// Heading is a section heading inside the talk body.
type Heading struct {
	Level    int    `json:"level"`
	Markdown string `json:"markdown"`
}

// Paragraph is a body paragraph with its verse-style number.
type Paragraph struct {
	Verse    int    `json:"verse"`
	Markdown string `json:"markdown"`
}

// Image is an inline figure.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

func (Heading) bodyElement()   {}
func (Paragraph) bodyElement() {}
func (Image) bodyElement()     {}

// MarshalJSON tags the element so persisted documents keep the
// {"type": "heading", ...} shape.
func (h Heading) MarshalJSON() ([]byte, error) {
	type alias Heading
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "heading", alias: alias(h)})
}

func (p Paragraph) MarshalJSON() ([]byte, error) {
	type alias Paragraph
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "paragraph", alias: alias(p)})
}

func (i Image) MarshalJSON() ([]byte, error) {
	type alias Image
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "image", alias: alias(i)})
}

// Body is the ordered talk body. It unmarshals tagged elements back into
// their concrete types.
type Body []BodyElement

// UnmarshalJSON decodes a tagged element array.
func (b *Body) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Body, 0, len(raw))
	for _, msg := range raw {
		var tag struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(msg, &tag); err != nil {
			return err
		}

		switch tag.Type {
		case "heading":
			var h Heading
			if err := json.Unmarshal(msg, &h); err != nil {
				return err
			}
			out = append(out, h)
		case "paragraph":
			var p Paragraph
			if err := json.Unmarshal(msg, &p); err != nil {
				return err
			}
			out = append(out, p)
		case "image":
			var i Image
			if err := json.Unmarshal(msg, &i); err != nil {
				return err
			}
			out = append(out, i)
		default:
			return fmt.Errorf("unknown body element type %q", tag.Type)
		}
	}

	*b = out
	return nil
}

// Source is a footnote entry from the talk's notes section.
type Source struct {
	Number   int    `json:"number"`
	ID       string `json:"id"`
	Markdown string `json:"markdown"`
}

// Resource is a named external URL associated with a talk, for example
// "Gospel Library" or "YouTube Video".
type Resource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Record is a fully normalized conference talk.
type Record struct {
	Session      string     `json:"session"`
	URL          string     `json:"url"`
	Title        string     `json:"title"`
	Speaker      string     `json:"speaker"`
	SpeakerRole  *string    `json:"speaker_role"`
	Thumbnail    *string    `json:"thumbnail"`
	Subtitle     *string    `json:"subtitle"`
	Kicker       *string    `json:"kicker"`
	Body         Body       `json:"body"`
	Sources      []Source   `json:"sources"`
	FullMarkdown string     `json:"full_markdown"`
	Resources    []Resource `json:"talk-resources"`
}

// AddResource sets a named resource URL. Re-adding a name replaces the
// existing entry in place; unrelated names keep their first-creation order.
func (r *Record) AddResource(name, url string) {
	for i := range r.Resources {
		if r.Resources[i].Name == name {
			r.Resources[i].URL = url
			return
		}
	}
	r.Resources = append(r.Resources, Resource{Name: name, URL: url})
}

// ResourceURL returns the URL for a named resource, or "" if unset.
func (r *Record) ResourceURL(name string) string {
	for _, res := range r.Resources {
		if res.Name == name {
			return res.URL
		}
	}
	return ""
}
