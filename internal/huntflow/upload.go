package huntflow

import "fmt"

const uploadPath = "upload"

// UploadFile posts the resume file as multipart form data and returns the
// remote file id. Every call creates a new remote file.
func (c *Client) UploadFile(filename string) (int, error) {
	var uploaded createdResource
	if err := c.postFile(uploadPath, filename, &uploaded); err != nil {
		return 0, fmt.Errorf("uploading file %q: %w", filename, err)
	}

	return uploaded.ID, nil
}
