package sharepoint

// driveItem is the subset of the Microsoft Graph driveItem resource the
// folder walk needs.
type driveItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Size   int64  `json:"size"`
	WebURL string `json:"webUrl"`

	File *struct {
		MIMEType string `json:"mimeType"`
	} `json:"file,omitempty"`

	Folder *struct {
		ChildCount int `json:"childCount"`
	} `json:"folder,omitempty"`

	ParentReference struct {
		Path string `json:"path"`
	} `json:"parentReference"`
}

func (d *driveItem) isFolder() bool {
	return d.Folder != nil
}

// childrenResponse is a Graph collection page of driveItems
type childrenResponse struct {
	Value    []driveItem `json:"value"`
	NextLink string      `json:"@odata.nextLink"`
}

// siteResponse carries the site ID resolved from hostname and site path
type siteResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// driveResponse carries the default document library of a site
type driveResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// graphError is the error envelope Graph returns on non-2xx responses
type graphError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
