package resource

import (
	"errors"
	"testing"

	docerrors "github.com/jdziat/docdb-go/pkg/errors"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want URLParts
	}{
		{
			name: "full url",
			raw:  "https://host.example.com:443/dbs/mydb",
			want: URLParts{Protocol: "https", Host: "host.example.com", Port: "443", Path: "/dbs/", File: "mydb"},
		},
		{
			name: "no port",
			raw:  "https://acct.documents.azure.com/dbs/mydb/colls",
			want: URLParts{Protocol: "https", Host: "acct.documents.azure.com", Path: "/dbs/mydb/", File: "colls"},
		},
		{
			name: "no protocol",
			raw:  "acct.documents.azure.com:443/dbs",
			want: URLParts{Host: "acct.documents.azure.com", Port: "443", Path: "/", File: "dbs"},
		},
		{
			name: "query and hash",
			raw:  "https://localhost:8081/dbs/mydb/colls/c/docs?x=1&y=2#top",
			want: URLParts{Protocol: "https", Host: "localhost", Port: "8081", Path: "/dbs/mydb/colls/c/", File: "docs", Query: "x=1&y=2", Fragment: "top"},
		},
		{
			name: "single character file",
			raw:  "https://h/dbs/a/colls/c",
			want: URLParts{Protocol: "https", Host: "h", Path: "/dbs/a/colls/", File: "c"},
		},
		{
			name: "upper case protocol",
			raw:  "HTTP://127.0.0.1:8081/dbs",
			want: URLParts{Protocol: "http", Host: "127.0.0.1", Port: "8081", Path: "/", File: "dbs"},
		},
		{
			name: "trailing slash",
			raw:  "https://h/dbs/",
			want: URLParts{Protocol: "https", Host: "h", Path: "/dbs/", File: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseURL(tt.raw)
			if err != nil {
				t.Fatalf("ParseURL(%q) error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseURL(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseURL_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"https://",
		"host.example.com",
		"https://host:port/dbs",
		"ftp://host/dbs",
		"https://host/dbs with space",
	}

	for _, raw := range inputs {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseURL(raw)
			if err == nil {
				t.Fatalf("ParseURL(%q) expected error", raw)
			}
			if !errors.Is(err, docerrors.ErrInvalidURL) {
				t.Errorf("ParseURL(%q) error = %v, want ErrInvalidURL", raw, err)
			}
		})
	}
}

func TestURLParts_Rebuild(t *testing.T) {
	tests := []struct {
		raw     string
		wantURL string
		wantURI string
	}{
		{"https://host.example.com:443/dbs/mydb", "https://host.example.com:443/dbs/mydb", "/dbs/mydb"},
		{"host.example.com/dbs", "https://host.example.com/dbs", "/dbs"},
		{"http://localhost:8081/dbs/db/colls?a=b#frag", "http://localhost:8081/dbs/db/colls?a=b", "/dbs/db/colls?a=b"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			p, err := ParseURL(tt.raw)
			if err != nil {
				t.Fatalf("ParseURL() error = %v", err)
			}
			if got := p.String(); got != tt.wantURL {
				t.Errorf("String() = %q, want %q", got, tt.wantURL)
			}
			if got := p.RequestURI(); got != tt.wantURI {
				t.Errorf("RequestURI() = %q, want %q", got, tt.wantURI)
			}
		})
	}
}
