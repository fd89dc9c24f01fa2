package client

import "encoding/json"

// Response envelope types mirror exactly the field shapes the query
// builders request; any other wire detail is ignored.

type categoryNode struct {
	ID    json.Number `json:"id"`
	Title string      `json:"title"`
}

type categoryConnection struct {
	Edges []struct {
		Node categoryNode `json:"node"`
	} `json:"edges"`
}

// categoriesData accepts both the filtered listing and the by-ID lookup,
// whichever field the executed query selected.
type categoriesData struct {
	EditorialCategories      *categoryConnection `json:"editorialCategories"`
	EditorialCategoriesByIDs *categoryConnection `json:"editorialCategoriesByIDs"`
}

func (d *categoriesData) connection() *categoryConnection {
	if d.EditorialCategoriesByIDs != nil {
		return d.EditorialCategoriesByIDs
	}
	return d.EditorialCategories
}

type programSetNode struct {
	ID          json.Number `json:"id"`
	Title       string      `json:"title"`
	SharingURL  string      `json:"sharingUrl"`
	Description string      `json:"description"`
	Synopsis    string      `json:"synopsis"`
}

type programSetsData struct {
	ProgramSets *struct {
		Edges []struct {
			Node programSetNode `json:"node"`
		} `json:"edges"`
		TotalCount int `json:"totalCount"`
	} `json:"programSets"`
}

type programSetsByIDsData struct {
	ProgramSetsByIDs *struct {
		Nodes []programSetNode `json:"nodes"`
	} `json:"programSetsByIds"`
}

type imageNode struct {
	URL    string `json:"url"`
	URL1x1 string `json:"url1X1"`
}

type episodeNode struct {
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Synopsis    string     `json:"synopsis"`
	SharingURL  string     `json:"sharingUrl"`
	PublishDate *string    `json:"publicationStartDateAndTime"`
	Duration    *int       `json:"duration"`
	Image       *imageNode `json:"image"`
	Audios      []struct {
		URL         *string `json:"url"`
		DownloadURL *string `json:"downloadUrl"`
		MimeType    string  `json:"mimeType"`
	} `json:"audios"`
}

type episodesData struct {
	ProgramSet *struct {
		Title      string     `json:"title"`
		Path       string     `json:"path"`
		Synopsis   string     `json:"synopsis"`
		SharingURL string     `json:"sharingUrl"`
		Image      *imageNode `json:"image"`
		Items      struct {
			Nodes []episodeNode `json:"nodes"`
		} `json:"items"`
	} `json:"programSet"`
}
