package request

// AttachLinkRequest is the JSON body of POST /files when attaching an external
// link instead of uploading bytes.
type AttachLinkRequest struct {
	URL   string `json:"url" binding:"required"`
	Title string `json:"title"`
}
