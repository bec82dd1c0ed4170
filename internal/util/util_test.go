package util

import (
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHuman(t *testing.T) {
	assert.Equal(t, "512 B", Human(512))
	assert.Equal(t, "1.50 KB", Human(1536))
	assert.Equal(t, "2.00 MB", Human(2<<20))
	assert.Equal(t, "3.00 GB", Human(3<<30))
	assert.Equal(t, "2048.00 GB", Human(2<<40))
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Week 1 slides.pdf", "Week_1_slides.pdf"},
		{"情報処理・演習 (第2回)", "情報処理_演習_第2回"},
		{"../../etc/passwd", "etc_passwd"},
		{"   ", "untitled"},
		{"report-final__v2.docx", "report-final_v2.docx"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SanitizeFilename(c.in), c.in)
	}
}

func TestAttachmentName(t *testing.T) {
	assert.Equal(t, "notes.pdf", AttachmentName("notes.pdf", "https://x/y.pdf"))
	assert.Equal(t, "y.pdf", AttachmentName(" ", "https://x/files/y.pdf?dl=1"))
	assert.Equal(t, "untitled", AttachmentName("", "https://x/"))
}

func TestHTTPClientScopesCookies(t *testing.T) {
	var gotCookie, gotUA string
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		gotCookie = r.Header.Get("Cookie")
		gotUA = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	get := func(c *http.Client, path string) string {
		t.Helper()
		resp, err := c.Get(srv.URL + path)
		require.NoError(t, err)
		_ = resp.Body.Close()
		return gotCookie
	}

	// issued for the portal host only; the test server is a foreign host
	foreign := NewHTTPClient(HTTPClientOptions{
		Cookies: []*http.Cookie{{Name: "JSESSIONID", Value: "secret", Domain: "portal.dhw.ac.jp", Path: "/uprx"}},
	})
	assert.Empty(t, get(foreign, "/elsewhere"))
	assert.Empty(t, get(foreign, "/uprx/attach/a.pdf"))

	own := NewHTTPClient(HTTPClientOptions{
		UserAgent: "dhu-test",
		Cookies: []*http.Cookie{
			{Name: "JSESSIONID", Value: "abc", Domain: "127.0.0.1", Path: "/uprx"},
			{Name: "lang", Value: "ja", Domain: "127.0.0.1"},
			nil,
		},
	})
	assert.Equal(t, "lang=ja", get(own, "/elsewhere"))
	assert.Equal(t, "dhu-test", gotUA)

	got := get(own, "/uprx/attach/a.pdf")
	assert.Contains(t, got, "JSESSIONID=abc")
	assert.Contains(t, got, "lang=ja")
	assert.Equal(t, 4, hits)
}

func TestSeedJarFallbackURL(t *testing.T) {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	n := SeedJar(jar, []*http.Cookie{
		{Name: "JSESSIONID", Value: "abc"},
		{Name: "route", Value: "1", Domain: ".dhw.ac.jp"},
	}, "https://portal.dhw.ac.jp/uprx/")
	assert.Equal(t, 2, n)

	u, _ := url.Parse("https://portal.dhw.ac.jp/uprx/attach/a.pdf")
	assert.Len(t, jar.Cookies(u), 2)

	other, _ := url.Parse("https://cdn.example.com/a.pdf")
	assert.Empty(t, jar.Cookies(other))

	assert.Zero(t, SeedJar(jar, []*http.Cookie{{Name: "orphan", Value: "x"}}, ""))
}

func TestCleanupPartialsAndRemoveIfEmpty(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "course")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "a.pdf.part"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.pdf"), []byte("x"), 0644))

	assert.Equal(t, 1, CleanupPartials(dir))
	assert.True(t, RemoveIfEmpty(sub))
	assert.False(t, RemoveIfEmpty(dir))
	assert.FileExists(t, filepath.Join(dir, "b.pdf"))
}
