package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/construct-hq/tenderbase/pkg/domain/types"
)

// Taxonomy holds the optional keyword extension file for document
// categorization. The taxonomy itself is closed; the file only adds
// deployment-specific keywords to existing categories.
type Taxonomy struct {
	path string
}

// taxonomyFile is the TOML shape of a keyword extension file:
//
//	[[category]]
//	id = "PRICING"
//	keywords = ["cost plan", "schedule of rates"]
type taxonomyFile struct {
	Categories []struct {
		ID       string   `toml:"id"`
		Keywords []string `toml:"keywords"`
	} `toml:"category"`
}

func (t *Taxonomy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "taxonomy-keywords",
			Usage:       "Path to TOML file with extra categorization keywords",
			Sources:     cli.EnvVars("TENDERBASE_TAXONOMY_KEYWORDS"),
			Destination: &t.path,
		},
	}
}

// Configure loads the keyword extensions. Returns nil when no file is
// configured. Entries naming an unknown category are rejected so a typo in
// the file surfaces at startup rather than silently dropping keywords.
func (t *Taxonomy) Configure() (map[types.DocumentCategory][]string, error) {
	if t.path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(t.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read taxonomy keywords file", goerr.V("path", t.path))
	}

	var file taxonomyFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse taxonomy keywords file", goerr.V("path", t.path))
	}

	extra := make(map[types.DocumentCategory][]string)
	for _, entry := range file.Categories {
		cat := types.DocumentCategory(entry.ID)
		if err := cat.Validate(); err != nil {
			return nil, goerr.Wrap(err, "unknown category in taxonomy keywords file", goerr.V("id", entry.ID))
		}
		extra[cat] = append(extra[cat], entry.Keywords...)
	}
	return extra, nil
}
