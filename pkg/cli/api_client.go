package cli

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// APIClient issues authenticated requests against the SSB REST API.
// SSB deployments commonly run behind self-signed certificates, so
// certificate validation is disabled on the owned transport.
type APIClient struct {
	baseURL  string
	username string
	password string

	httpClient *http.Client
}

func NewAPIClient(baseURL, username, password string) *APIClient {
	return &APIClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
	}
}

func (api *APIClient) client() *http.Client {
	if api.httpClient == nil {
		api.httpClient = &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		}
	}
	return api.httpClient
}

// Get issues a GET request, expects a 200 and decodes the JSON body into out.
func (api *APIClient) Get(path string, out any) error {
	resp, err := api.call(http.MethodGet, path, nil, []int{http.StatusOK})
	if err != nil {
		return err
	}
	return resp.DecodeJSON(out)
}

// Put issues a PUT request with a JSON body and expects a 200.
func (api *APIClient) Put(path string, body any) (*APIResponse, error) {
	return api.call(http.MethodPut, path, body, []int{http.StatusOK})
}

// Post issues a POST request with an optional JSON body. The expected status
// codes default to 200; callers that tolerate other codes list them
// explicitly.
func (api *APIClient) Post(path string, body any, expected ...int) (*APIResponse, error) {
	if len(expected) == 0 {
		expected = []int{http.StatusOK}
	}
	return api.call(http.MethodPost, path, body, expected)
}

func (api *APIClient) call(method, path string, body any, expected []int) (*APIResponse, error) {
	url := api.baseURL + path

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode request body for %s %s", method, url)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, url, payload)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for %s %s", method, url)
	}

	req.SetBasicAuth(api.username, api.password)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	log.Debugf("%s %s", method, url)

	resp, err := api.client().Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "request failed for %s %s", method, url)
	}

	apiResp, err := NewAPIResponse(resp)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read response for %s %s", method, url)
	}

	for _, code := range expected {
		if apiResp.StatusCode == code {
			return apiResp, nil
		}
	}

	return nil, &UnexpectedResponseError{
		Method:     method,
		URL:        url,
		StatusCode: apiResp.StatusCode,
		Body:       string(apiResp.Body),
	}
}
