package urlutils

import "testing"

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected bool
	}{
		{
			name:     "valid https URL",
			url:      "https://interactions.rest",
			expected: true,
		},
		{
			name:     "valid URL with path",
			url:      "https://interactions.rest/blog/hello",
			expected: true,
		},
		{
			name:     "missing scheme",
			url:      "interactions.rest",
			expected: false,
		},
		{
			name:     "site-relative path",
			url:      "/blog/hello",
			expected: false,
		},
		{
			name:     "empty string",
			url:      "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidURL(tt.url)
			if result != tt.expected {
				t.Errorf("IsValidURL(%q) = %v, expected %v", tt.url, result, tt.expected)
			}
		})
	}
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		ref      string
		expected string
	}{
		{
			name:     "site-relative post path",
			baseURL:  "https://interactions.rest",
			ref:      "/blog/hello",
			expected: "https://interactions.rest/blog/hello",
		},
		{
			name:     "base URL with trailing slash",
			baseURL:  "https://interactions.rest/",
			ref:      "/blog/hello",
			expected: "https://interactions.rest/blog/hello",
		},
		{
			name:     "already absolute",
			baseURL:  "https://interactions.rest",
			ref:      "https://elsewhere.example.com/post",
			expected: "https://elsewhere.example.com/post",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ResolveURL(tt.baseURL, tt.ref)
			if err != nil {
				t.Fatalf("ResolveURL() error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("ResolveURL(%q, %q) = %q, expected %q", tt.baseURL, tt.ref, result, tt.expected)
			}
		})
	}
}
