package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/pretty"
)

// APIResponse carries the status code and raw body of an API call whose
// status code was within the expected set.
type APIResponse struct {
	StatusCode  int    `json:"statusCode"`
	Body        []byte `json:"body"`
	contentType string
}

func NewAPIResponse(resp *http.Response) (*APIResponse, error) {
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &APIResponse{
		StatusCode:  resp.StatusCode,
		Body:        out,
		contentType: resp.Header.Get("Content-Type"),
	}, nil
}

func (resp *APIResponse) DecodeJSON(out any) error {
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return errors.Wrapf(err, "failed to parse body as JSON")
	}
	return nil
}

func (resp *APIResponse) Print() error {
	if len(resp.Body) == 0 {
		return nil
	}

	var out string
	switch strings.Split(resp.contentType, ";")[0] {
	default:
		out = string(resp.Body)

	case "application/json":
		var buf bytes.Buffer
		if err := json.Indent(&buf, resp.Body, "", "    "); err != nil {
			return err
		}
		out = string(pretty.Color(buf.Bytes(), nil))
	}

	fmt.Println(out)
	return nil
}
