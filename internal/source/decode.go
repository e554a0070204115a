package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/javiermolinar/atelier/internal/gallery"
)

// decode unmarshals data as YAML for .yaml/.yml names and as JSON otherwise.
func decode(name string, data []byte, v any) error {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("decoding json: %w", err)
		}
	}
	return nil
}

// text decodes any scalar as its text. null, objects and arrays become "".
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")):
		*t = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = text(s)
	case b[0] == '{', b[0] == '[':
		*t = ""
	default:
		*t = text(b)
	}
	return nil
}

func (t *text) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
		*t = ""
		return nil
	}
	*t = text(n.Value)
	return nil
}

// flag decodes a bool or a boolean-looking string. Anything else is false.
type flag bool

func (f *flag) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flag(parseFlag(s))
		return nil
	}
	*f = flag(parseFlag(string(b)))
	return nil
}

func (f *flag) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		*f = false
		return nil
	}
	*f = flag(parseFlag(n.Value))
	return nil
}

func parseFlag(s string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && v
}

type artworkDoc struct {
	Title       text `json:"title" yaml:"title"`
	Artist      text `json:"artist" yaml:"artist"`
	Image       text `json:"image" yaml:"image"`
	Size        text `json:"size" yaml:"size"`
	Medium      text `json:"medium" yaml:"medium"`
	Year        text `json:"year" yaml:"year"`
	Style       text `json:"style" yaml:"style"`
	Description text `json:"description" yaml:"description"`
	Available   flag `json:"available" yaml:"available"`
}

func (d artworkDoc) artwork() gallery.Artwork {
	return gallery.Artwork{
		Title:       string(d.Title),
		Artist:      string(d.Artist),
		Image:       string(d.Image),
		Size:        string(d.Size),
		Medium:      string(d.Medium),
		Year:        string(d.Year),
		Style:       string(d.Style),
		Description: string(d.Description),
		Available:   bool(d.Available),
	}
}

type featuredDoc struct {
	Title       text `json:"title" yaml:"title"`
	Description text `json:"description" yaml:"description"`
	Image       text `json:"image" yaml:"image"`
	Bg          text `json:"bg" yaml:"bg"`
}

func (d featuredDoc) featured() gallery.Featured {
	return gallery.Featured{
		Title:       string(d.Title),
		Description: string(d.Description),
		Image:       string(d.Image),
		Bg:          string(d.Bg),
	}
}
