package pkg

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dkuaegis/aegis-adminpage/internal/app/errors"
	"github.com/dkuaegis/aegis-adminpage/internal/infrastructures"
)

// Fetch issues one JSON request against the upstream Aegis API and decodes
// the response into T. The session cookie rides on every request.
//
// Outcomes:
//   - 2xx with a JSON body: decoded payload.
//   - 204 or 2xx without a JSON body: nil payload, nil error.
//   - non-2xx with a JSON body: AppError carrying the upstream status and the
//     body's machine-readable "name".
//   - non-2xx without a JSON body: AppError with the status only.
//   - transport failure or undecodable success body: AppError with status 0.
func Fetch[T any](ctx context.Context, client *infrastructures.AegisClient, method, path string, query url.Values, body any) (*T, error) {
	fullURL := client.FullURL(path)
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.NewInternalServerError(err, "요청 처리에 실패했습니다.")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return nil, errors.NewTransportError(err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if client.SessionCookie != "" {
		req.Header.Set("Cookie", client.SessionCookie)
	}

	resp, err := client.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.NewTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewTransportError(err)
	}

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if resp.StatusCode == http.StatusNoContent || !isJSON {
			return nil, nil
		}
		var data T
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, errors.NewTransportError(err)
		}
		return &data, nil
	}

	if !isJSON {
		return nil, errors.NewUpstreamError(resp.StatusCode, "")
	}

	var upstreamErr struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &upstreamErr); err != nil {
		return nil, errors.NewUpstreamError(resp.StatusCode, "")
	}
	return nil, errors.NewUpstreamError(resp.StatusCode, upstreamErr.Name)
}
