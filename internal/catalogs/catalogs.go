// Package catalogs holds what the player catalog adapters share: the
// per-team document format and its decoding into normalized players.
package catalogs

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
	"github.com/jpamies/worldcup-squad-selector/pkg/players"
)

// Kind names a catalog adapter.
type Kind string

const (
	Files  Kind = "files"
	Remote Kind = "remote"
	Memory Kind = "memory"
)

func (k Kind) String() string {
	return string(k)
}

// ParseKind parses an adapter name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case Files, Remote, Memory:
		return k, nil
	}
	return "", errors.NewValidationError("catalog", s, "must be files, remote or memory")
}

// Country is the team header of a document.
type Country struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	NameLocal     string `json:"nameLocal"`
	Flag          string `json:"flag,omitempty"`
	Confederation string `json:"confederation"`
}

// Document is one team's player file as written by the data downloader.
type Document struct {
	Country     Country             `json:"country"`
	LastUpdated string              `json:"lastUpdated"`
	Source      string              `json:"source"`
	Players     []players.RawPlayer `json:"players"`
}

// Format of a document.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// Decode parses a document and normalizes its players. YAML is converted to
// JSON first so both formats share the JSON field rules.
func Decode(data []byte, format Format, n *players.Normalizer) (*Document, []players.Player, error) {
	if format == YAML {
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, nil, errors.WrapParse(string(format), "", err)
		}
		data = converted
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, nil, errors.WrapParse(string(format), "", err)
	}

	ps, err := n.NormalizeAll(doc.Players)
	if err != nil {
		return nil, nil, err
	}
	return &doc, ps, nil
}
