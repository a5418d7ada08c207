package share

import (
	"net/url"
	"slices"
	"strings"

	"github.com/KirkDiggler/combat-tracker/internal/errors"
)

// URLOutput is a share link and its length
type URLOutput struct {
	URL  string
	Size int
}

// BuildURL sets the share parameter on baseURL, replacing any previous
// payload in place. Other query pairs keep their order and encoding.
// Links longer than MaxURLLength are refused with OutOfRange.
func BuildURL(baseURL, payload string) (*URLOutput, error) {
	u, err := parseAbsolute(baseURL)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, MsgBadURL)
	}

	pairs, at := splitQuery(u.RawQuery)
	param := ParamKey + "=" + url.QueryEscape(payload)
	if at < 0 {
		pairs = append(pairs, param)
	} else {
		pairs = slices.Insert(pairs, at, param)
	}
	u.RawQuery = strings.Join(pairs, "&")
	u.ForceQuery = false

	link := u.String()
	if len(link) > MaxURLLength {
		return nil, errors.OutOfRange(MsgURLTooLong).
			WithMeta("size", len(link)).
			WithMeta("limit", MaxURLLength)
	}
	return &URLOutput{URL: link, Size: len(link)}, nil
}

// PayloadFromURL returns the share parameter of rawURL. ok is false when the
// URL does not parse or has no share parameter.
func PayloadFromURL(rawURL string) (payload string, ok bool) {
	u, err := parseAbsolute(rawURL)
	if err != nil {
		return "", false
	}
	query := u.Query()
	if !query.Has(ParamKey) {
		return "", false
	}
	return query.Get(ParamKey), true
}

// StripShareParam removes the share parameter and leaves the rest of the
// query as written. Unparseable URLs are returned unchanged.
func StripShareParam(rawURL string) string {
	u, err := parseAbsolute(rawURL)
	if err != nil {
		return rawURL
	}
	pairs, _ := splitQuery(u.RawQuery)
	u.RawQuery = strings.Join(pairs, "&")
	u.ForceQuery = false
	return u.String()
}

// splitQuery drops every share pair from rawQuery. at is the position the
// first one held, or -1 when there was none.
func splitQuery(rawQuery string) (pairs []string, at int) {
	at = -1
	if rawQuery == "" {
		return nil, at
	}
	for _, pair := range strings.Split(rawQuery, "&") {
		key, _, _ := strings.Cut(pair, "=")
		if unescaped, err := url.QueryUnescape(key); err == nil {
			key = unescaped
		}
		if key == ParamKey {
			if at < 0 {
				at = len(pairs)
			}
			continue
		}
		pairs = append(pairs, pair)
	}
	return pairs, at
}

func parseAbsolute(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.InvalidArgumentf("%q is not an absolute URL", rawURL)
	}
	return u, nil
}
