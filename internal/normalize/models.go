package normalize

import (
	"regexp"
	"strings"
)

const (
	ModelInstant = "Instant"
	ModelEval    = "Eval"
)

var (
	modelSplit = regexp.MustCompile(`[|,/;&]+`)
	evalModel  = regexp.MustCompile(`(?i)(^1$|^2$|^one$|^two$|[12][\s-]?(phase|step)|(one|two)[\s-]?(phase|step)|eval|challenge|scal(e|ing))`)
)

// ModelTag maps a single program label onto the tag vocabulary. Labels that
// match neither tag are returned trimmed but otherwise untouched.
func ModelTag(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}
	if strings.Contains(strings.ToLower(token), "instant") {
		return ModelInstant
	}
	if evalModel.MatchString(token) {
		return ModelEval
	}
	return token
}

// NormalizeModels splits a free-text program cell and maps each part to a tag,
// dropping duplicates while keeping first-seen order.
func NormalizeModels(raw string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, token := range modelSplit.Split(raw, -1) {
		tag := ModelTag(token)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
