// Package huntflow is a thin client for the parts of the Huntflow API the
// uploader needs: the vacancy catalog, vacancy statuses, file upload and
// applicant creation.
package huntflow

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Client struct {
	// ctx used only for http requests right now
	ctx        context.Context
	token      string
	orgID      string
	logger     *zap.Logger
	HTTPClient *http.Client
	APIURL     string
}

func New(ctx context.Context, logger *zap.Logger, apiURL, orgID, token string) *Client {
	return &Client{
		ctx:    ctx,
		token:  token,
		orgID:  orgID,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}
