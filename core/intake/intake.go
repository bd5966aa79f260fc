package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/kaptinlin/jsonrepair"
	"golang.org/x/net/html"

	"github.com/AxWise-GmbH/axwise-flow-sub001/core/demographics"
	"github.com/AxWise-GmbH/axwise-flow-sub001/internal/textutil"
	"github.com/AxWise-GmbH/axwise-flow-sub001/providers/observability"
)

// previewLength bounds the payload preview attached to decode logs.
const previewLength = 80

// fencePattern matches a payload wrapped in a markdown code fence, with or
// without a language marker.
var fencePattern = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*\n(.*?)```\\s*$")

// htmlStructuralTags are the element names whose presence marks a payload as
// rendered HTML rather than text that happens to contain angle brackets.
var htmlStructuralTags = map[string]bool{
	"p": true, "br": true, "div": true, "span": true,
	"ul": true, "ol": true, "li": true,
	"b": true, "i": true, "strong": true, "em": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"table": true, "tr": true, "td": true, "th": true,
	"section": true, "article": true,
}

// Decode classifies a raw payload and prepares parser input. JSON payloads,
// fenced or bare and repaired when sloppy, become structured field input;
// HTML payloads are converted to markdown so their lists parse as bullets;
// everything else passes through as text. Decode never fails: every
// degradation path ends at the plain-text route.
func Decode(ctx context.Context, payload string) demographics.Input {
	trimmed := strings.TrimSpace(payload)
	if trimmed == "" {
		logDecode(ctx, "empty", payload, nil)
		return demographics.Input{}
	}

	candidate := stripFences(trimmed)

	var jsonErr error
	if strings.HasPrefix(candidate, "{") {
		fields, ok, err := decodeFields(candidate)
		if ok {
			logDecode(ctx, "fields", payload, nil)
			return demographics.Input{Fields: &fields}
		}
		jsonErr = err
	}

	if looksLikeHTML(candidate) {
		markdown, err := htmltomarkdown.ConvertString(candidate)
		if err == nil {
			logDecode(ctx, "html", payload, nil)
			return demographics.Input{Text: markdown}
		}
		logDecode(ctx, "text", payload, err)
		return demographics.Input{Text: candidate}
	}

	logDecode(ctx, "text", payload, jsonErr)
	return demographics.Input{Text: candidate}
}

// Normalize decodes a payload and parses it in one step.
func Normalize(ctx context.Context, payload string) []demographics.Item {
	return demographics.Parse(ctx, Decode(ctx, payload))
}

// decodeFields runs a JSON-looking candidate through repair, unmarshalling,
// and field extraction. ok is false when the candidate is not usable JSON or
// carries none of the known fields; err is set only for the former.
func decodeFields(candidate string) (demographics.Fields, bool, error) {
	repaired, err := jsonrepair.JSONRepair(candidate)
	if err != nil {
		return demographics.Fields{}, false, fmt.Errorf("failed to repair JSON payload: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(repaired), &raw); err != nil {
		return demographics.Fields{}, false, fmt.Errorf("failed to unmarshal repaired payload: %w", err)
	}

	fields, ok := FieldsFromMap(raw)
	return fields, ok, nil
}

// FieldsFromMap extracts the known demographic fields from a decoded JSON
// object. Field names are matched tolerantly ("Experience Level" and
// "experience_level" both land), scalars are coerced to strings, and roles
// accept either a single value or a list. Unknown keys are ignored. The
// second return value reports whether any field was set.
func FieldsFromMap(raw map[string]any) (demographics.Fields, bool) {
	var fields demographics.Fields
	set := false

	for key, value := range raw {
		switch normalizeFieldName(key) {
		case "experience_level":
			if s := coerceString(value); s != "" {
				fields.ExperienceLevel = s
				set = true
			}
		case "roles":
			if roles := coerceStrings(value); len(roles) > 0 {
				fields.Roles = roles
				set = true
			}
		case "industry":
			if s := coerceString(value); s != "" {
				fields.Industry = s
				set = true
			}
		case "location":
			if s := coerceString(value); s != "" {
				fields.Location = s
				set = true
			}
		case "age_range":
			if s := coerceString(value); s != "" {
				fields.AgeRange = s
				set = true
			}
		case "professional_context":
			if s := coerceString(value); s != "" {
				fields.ProfessionalContext = s
				set = true
			}
		}
	}
	return fields, set
}

// normalizeFieldName folds a JSON key onto the snake_case field names of the
// upstream contract.
func normalizeFieldName(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.ReplaceAll(key, "-", "_")
	return strings.ReplaceAll(key, " ", "_")
}

// coerceString turns a JSON scalar into its display string.
func coerceString(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

// coerceStrings accepts a scalar or a list and returns the non-empty
// elements as strings.
func coerceStrings(value any) []string {
	if list, ok := value.([]any); ok {
		out := make([]string, 0, len(list))
		for _, entry := range list {
			if s := coerceString(entry); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	if s := coerceString(value); s != "" {
		return []string{s}
	}
	return nil
}

// stripFences unwraps a payload enclosed in a markdown code fence.
func stripFences(s string) string {
	if m := fencePattern.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}

// looksLikeHTML reports whether the payload contains structural HTML
// elements. Bare angle brackets in prose ("3<5") tokenize as text and do
// not count.
func looksLikeHTML(s string) bool {
	if !strings.Contains(s, "<") {
		return false
	}

	tokenizer := html.NewTokenizer(strings.NewReader(s))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			if htmlStructuralTags[string(name)] {
				return true
			}
		}
	}
}

// logDecode emits one debug line describing how the payload was classified.
func logDecode(ctx context.Context, format, payload string, err error) {
	obs := observability.FromContext(ctx)
	if obs == nil {
		return
	}

	attrs := []observability.Attribute{
		observability.String(observability.AttrIntakeFormat, format),
		observability.Int(observability.AttrIntakePayloadLength, len(payload)),
		observability.String(observability.AttrIntakePayloadPreview, textutil.TruncateString(payload, previewLength)),
	}
	if err != nil {
		attrs = append(attrs, observability.Error(err))
	}
	obs.Debug(ctx, observability.EventIntakeDecode, attrs...)
}
