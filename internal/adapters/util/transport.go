package util

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"strings"
)

// LoggingTransport is an http.RoundTripper that logs outbound requests
// and responses when the log level is debug. Bearer tokens are never
// written to the log.
type LoggingTransport struct {
	Base     http.RoundTripper
	LogLevel string
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	if strings.ToLower(t.LogLevel) != "debug" {
		return base.RoundTrip(req)
	}

	var reqBody []byte
	if req.Body != nil {
		reqBody, _ = io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewBuffer(reqBody))
	}

	auth := "none"
	if req.Header.Get("Authorization") != "" {
		auth = "bearer <redacted>"
	}
	log.Printf("DEBUG OUTBOUND REQUEST: [%s] %s (auth: %s)", req.Method, req.URL.String(), auth)
	if len(reqBody) > 0 {
		if strings.Contains(req.URL.Path, "/auth/login") {
			// Credentials stay out of the log too.
			log.Printf("DEBUG OUTBOUND REQUEST BODY: <credentials, length=%d>", len(reqBody))
		} else {
			log.Printf("DEBUG OUTBOUND REQUEST BODY: %s", string(reqBody))
		}
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return resp, err
	}

	log.Printf("DEBUG OUTBOUND RESPONSE: %d %s", resp.StatusCode, req.URL.String())

	respBody, _ := io.ReadAll(resp.Body)
	resp.Body = io.NopCloser(bytes.NewBuffer(respBody))

	if len(respBody) > 0 {
		log.Printf("DEBUG OUTBOUND RESPONSE BODY: %s", string(respBody))
	}

	return resp, nil
}
