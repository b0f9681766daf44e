package interfaces

import (
	"context"

	"github.com/construct-hq/tenderbase/pkg/domain/model"
)

// FolderStore abstracts the remote document store (SharePoint drive in
// production). Listings are bounded by depth and count so an arbitrarily
// deep folder tree cannot blow up a build.
type FolderStore interface {
	// List returns the documents under path, traversing subfolders up to
	// maxDepth and returning at most maxCount entries.
	List(ctx context.Context, path string, maxDepth, maxCount int) ([]*model.Document, error)

	// Download returns the raw bytes of a document by its download
	// reference from a prior List call.
	Download(ctx context.Context, downloadRef string) ([]byte, error)
}
