package adapter

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-resty/resty/v2"
)

// serverErrorBody is the structured error envelope both backends emit on
// 4xx/5xx: ASP.NET problem-details style title plus an optional message and
// per-field validation errors.
type serverErrorBody struct {
	Message string              `json:"message"`
	Title   string              `json:"title"`
	Errors  map[string][]string `json:"errors"`
}

// validationExceptionRe pulls the human message out of an unstructured
// ASP.NET stack-trace body ("ValidationException: <msg>\r\n at ...").
var validationExceptionRe = regexp.MustCompile(`ValidationException: (.+?)(\r\n|\\r\\n)`)

// mapHTTPError converts a backend reply to the package error taxonomy:
// nil for 2xx, otherwise a [*ServerError] carrying the extracted message and
// any per-field validation errors.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	serverErr := &ServerError{Status: resp.StatusCode()}

	var structured serverErrorBody
	if err := json.Unmarshal(resp.Body(), &structured); err == nil {
		serverErr.FieldErrors = structured.Errors
		switch {
		case structured.Message != "":
			serverErr.Message = structured.Message
		case structured.Title != "":
			serverErr.Message = structured.Title
		}
	}

	if serverErr.Message == "" && body != "" {
		serverErr.Message = messageFromRawBody(body)
	}

	return serverErr
}

func messageFromRawBody(body string) string {
	if match := validationExceptionRe.FindStringSubmatch(body); match != nil {
		return match[1]
	}

	firstLine, _, _ := strings.Cut(body, "\r\n")
	firstLine, _, _ = strings.Cut(firstLine, "\n")
	return firstLine
}
