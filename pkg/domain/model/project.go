package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/construct-hq/tenderbase/pkg/domain/types"
)

// Project represents a construction project whose tender documents live in
// a remote folder store.
type Project struct {
	ID        types.ProjectID
	Name      string
	Location  string
	Reference string

	// FolderPath is the path of the project's document folder in the
	// remote store, e.g. "/Tenders/StAnnes-Refurb".
	FolderPath string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fields required before a project can be persisted
func (p *Project) Validate() error {
	if p.Name == "" {
		return goerr.New("project name is required")
	}
	if p.FolderPath == "" {
		return goerr.New("project folder path is required", goerr.V("project", p.Name))
	}
	return nil
}
