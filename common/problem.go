package common

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/moogar0880/problems"
)

// problemMessage extracts the detail (or, failing that, the title) from an
// RFC 7807 problem response. It returns "" unless the response declares the
// problem+json media type and the body decodes.
func problemMessage(res *http.Response, body []byte) string {
	ct := res.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, problems.ProblemMediaType) {
		return ""
	}

	var prob problems.DefaultProblem

	if err := json.Unmarshal(body, &prob); err != nil {
		return ""
	}

	if prob.Detail != "" {
		return prob.Detail
	}

	return prob.Title
}
