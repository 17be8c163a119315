package huntflow

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
)

const contentType = "application/json"

type ItemResponse struct {
	Items      []Item `json:"items"`
	TotalPages int    `json:"total_pages"`
}

type Item interface{}

// GetItems makes GET requests to the Huntflow API and returns items from
// all pages. The page count is taken from the first response; remaining
// pages are fetched sequentially and appended in page order.
func (c *Client) GetItems(path string) ([]Item, error) {
	page := 1

	response, err := c.getItemPage(path, page)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("got response from Huntflow", zap.String("path", path), zap.Int("total pages", response.TotalPages))

	items := response.Items

	for page < response.TotalPages {
		page++

		c.logger.Debug("additional request needed", zap.String("reason", fmt.Sprintf(
			"current page (%d) < all page count (%d)", page-1, response.TotalPages),
		))

		response, err = c.getItemPage(path, page)
		if err != nil {
			return nil, err
		}

		items = append(items, response.Items...)
	}

	return items, nil
}

func (c *Client) getItemPage(path string, page int) (*ItemResponse, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))

	var response *ItemResponse
	if err := c.getJSON(path, q, &response); err != nil {
		return nil, err
	}

	return response, nil
}

func (c *Client) getJSON(path string, q url.Values, target interface{}) error {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		return err
	}

	req = c.setHeaders(req)
	req.Header.Set("Content-Type", contentType)
	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	resp, err := c.request(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, http.StatusOK, target)
}

func (c *Client) postJSON(path string, body, target interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, c.endpoint(path), bytes.NewReader(data))
	if err != nil {
		return err
	}

	req = c.setHeaders(req)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.request(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, http.StatusOK, target)
}

func (c *Client) postFile(path, filename string, target interface{}) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	field, err := w.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return err
	}

	if _, err = io.Copy(field, file); err != nil {
		return err
	}
	w.Close()

	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, c.endpoint(path), &b)
	if err != nil {
		return err
	}

	req = c.setHeaders(req)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.request(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, http.StatusOK, target)
}

func (c *Client) request(req *http.Request) (*http.Response, error) {
	c.logger.Debug("make request", zap.String("url", req.URL.String()))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *Client) setHeaders(req *http.Request) *http.Request {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))

	return req
}

// endpoint builds the org-scoped API URL for the given path.
func (c *Client) endpoint(path string) string {
	return fmt.Sprintf("%s/accounts/%s/%s", c.APIURL, c.orgID, path)
}

func decodeResponse(resp *http.Response, wantStatus int, target interface{}) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != wantStatus {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	if target == nil {
		return nil
	}

	if err := json.Unmarshal(data, target); err != nil {
		return err
	}

	return nil
}
