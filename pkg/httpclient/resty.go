package httpclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type RestyClient struct {
	client *resty.Client
}

func New(baseURL string, timeout time.Duration, bearerToken string) HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	if bearerToken != "" {
		client.SetAuthToken(bearerToken)
	}

	return &RestyClient{client: client}
}

// GET request with optional query params
func (rc *RestyClient) Get(ctx context.Context, endpoint string, queryParams map[string]string, headers map[string]string, result interface{}) (*BaseResponse, error) {
	req := rc.client.R().SetContext(ctx).SetResult(result)

	if queryParams != nil {
		req.SetQueryParams(queryParams)
	}

	if headers != nil {
		req.SetHeaders(headers)
	}

	resp, err := req.Get(endpoint)
	if err != nil {
		return nil, err
	}
	return &BaseResponse{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
		Headers:    resp.Header(),
	}, nil
}
