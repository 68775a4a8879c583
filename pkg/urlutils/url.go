// Package urlutils provides URL helpers for resolving site-relative post
// paths against the configured base URL.
package urlutils

import "net/url"

// IsValidURL reports whether urlStr is an absolute URL with a scheme and
// host, suitable for use as the site base URL.
func IsValidURL(urlStr string) bool {
	u, err := url.Parse(urlStr)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// ResolveURL resolves a site-relative path against baseURL. An already
// absolute URL is returned unchanged.
func ResolveURL(baseURL, ref string) (string, error) {
	rel, err := url.Parse(ref)
	if err != nil {
		return "", err
	}

	if rel.IsAbs() {
		return ref, nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}

	return base.ResolveReference(rel).String(), nil
}
