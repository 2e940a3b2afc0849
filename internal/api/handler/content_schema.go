package handler

type createContentRequest struct {
	Title string `json:"title" validate:"required"`
	Kind  string `json:"kind"  validate:"required,oneof=image video text"`
	Theme string `json:"theme" validate:"required"`
	// URL carries the payload location for image and video kinds.
	URL string `json:"url,omitempty"`
	// Text carries the inline body for the text kind.
	Text        string   `json:"text,omitempty"`
	CategoryIDs []string `json:"category_ids,omitempty"`
}

type updateContentRequest struct {
	Title string `json:"title,omitempty"`
	Theme string `json:"theme,omitempty"`
	URL   string `json:"url,omitempty"`
	Text  string `json:"text,omitempty"`
}
