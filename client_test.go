package codewiki_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/codewiki"
	"github.com/fwojciec/codewiki/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// htmlRenderer renders every page from the same static markup.
func htmlRenderer(t *testing.T, html string, gotURL *string, gotOpts *codewiki.RenderOptions) *mock.Renderer {
	t.Helper()
	return &mock.Renderer{
		RenderFn: func(ctx context.Context, url string, opts codewiki.RenderOptions, fn func(codewiki.Document) error) error {
			if gotURL != nil {
				*gotURL = url
			}
			if gotOpts != nil {
				*gotOpts = opts
			}
			return fn(parseDocument(t, html))
		},
	}
}

// timeoutRenderer never reaches a settled page.
func timeoutRenderer() *mock.Renderer {
	return &mock.Renderer{
		RenderFn: func(ctx context.Context, url string, opts codewiki.RenderOptions, fn func(codewiki.Document) error) error {
			return codewiki.Errorf(codewiki.ETIMEOUT, "page %s did not settle within %s", url, opts.Timeout)
		},
	}
}

func TestClient_FeaturedRepos(t *testing.T) {
	t.Parallel()

	t.Run("renders homepage with list budget", func(t *testing.T) {
		t.Parallel()

		var url string
		var opts codewiki.RenderOptions
		client := codewiki.NewClient(htmlRenderer(t,
			`<body><a href="https://codewiki.google/github.com/acme/widget">widget
Widgets star 1k</a></body>`,
			&url, &opts))

		repos, err := client.FeaturedRepos(context.Background())

		require.NoError(t, err)
		assert.Equal(t, codewiki.DefaultSiteURL, url)
		assert.Equal(t, 45*time.Second, opts.Timeout)
		assert.Equal(t, 2*time.Second, opts.Settle)
		require.Len(t, repos, 1)
		assert.Equal(t, "acme/widget", repos[0].FullName)
	})

	t.Run("propagates timeout without partial result", func(t *testing.T) {
		t.Parallel()

		client := codewiki.NewClient(timeoutRenderer())

		repos, err := client.FeaturedRepos(context.Background())

		assert.Nil(t, repos)
		require.Error(t, err)
		assert.Equal(t, codewiki.ETIMEOUT, codewiki.ErrorCode(err))
	})
}

func TestClient_RepoDocumentation(t *testing.T) {
	t.Parallel()

	t.Run("renders repository page with documentation budget", func(t *testing.T) {
		t.Parallel()

		var url string
		var opts codewiki.RenderOptions
		client := codewiki.NewClient(htmlRenderer(t, `<body><h1>Widget</h1><h2>Intro</h2></body>`, &url, &opts))

		doc, err := client.RepoDocumentation(context.Background(), "acme", "widget")

		require.NoError(t, err)
		assert.Equal(t, "https://codewiki.google/github.com/acme/widget", url)
		assert.Equal(t, 60*time.Second, opts.Timeout)
		assert.Equal(t, 3*time.Second, opts.Settle)
		assert.Equal(t, "https://codewiki.google/github.com/acme/widget", doc.URL)
		assert.Equal(t, "Widget", doc.Title)
		assert.Len(t, doc.TOC, 1)
	})

	t.Run("rejects missing identifiers before rendering", func(t *testing.T) {
		t.Parallel()

		client := codewiki.NewClient(&mock.Renderer{
			RenderFn: func(context.Context, string, codewiki.RenderOptions, func(codewiki.Document) error) error {
				t.Fatal("renderer must not be called")
				return nil
			},
		})

		_, err := client.RepoDocumentation(context.Background(), "acme", "")

		assert.Equal(t, codewiki.EINVALID, codewiki.ErrorCode(err))
	})

	t.Run("propagates timeout without partial result", func(t *testing.T) {
		t.Parallel()

		client := codewiki.NewClient(timeoutRenderer())

		doc, err := client.RepoDocumentation(context.Background(), "acme", "widget")

		assert.Nil(t, doc)
		assert.Equal(t, codewiki.ETIMEOUT, codewiki.ErrorCode(err))
	})
}

func TestClient_ExportRepo(t *testing.T) {
	t.Parallel()

	fetchedAt := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	t.Run("converts extracted content to markdown", func(t *testing.T) {
		t.Parallel()

		html := `<body><article><h1>Widget</h1></article></body>`
		client := codewiki.NewClient(htmlRenderer(t, html, nil, nil))
		client.Now = func() time.Time { return fetchedAt }
		client.Extractor = &mock.Extractor{
			ExtractFn: func(got, pageURL string) (*codewiki.ExtractResult, error) {
				assert.Equal(t, html, got)
				assert.Equal(t, widgetURL, pageURL)
				return &codewiki.ExtractResult{Title: "Widget", ContentHTML: "<h1>Widget</h1>"}, nil
			},
		}
		client.Converter = &mock.Converter{
			ConvertFn: func(got, pageURL string) (string, error) {
				assert.Equal(t, "<h1>Widget</h1>", got)
				assert.Equal(t, widgetURL, pageURL)
				return "# Widget", nil
			},
		}

		export, err := client.ExportRepo(context.Background(), "acme", "widget")

		require.NoError(t, err)
		assert.Equal(t, &codewiki.Export{
			Owner:     "acme",
			Repo:      "widget",
			URL:       "https://codewiki.google/github.com/acme/widget",
			Title:     "Widget",
			Content:   "# Widget",
			FetchedAt: fetchedAt,
		}, export)
	})

	t.Run("requires extractor and converter", func(t *testing.T) {
		t.Parallel()

		client := codewiki.NewClient(htmlRenderer(t, "<body></body>", nil, nil))

		_, err := client.ExportRepo(context.Background(), "acme", "widget")

		assert.Equal(t, codewiki.EINTERNAL, codewiki.ErrorCode(err))
	})

	t.Run("propagates extraction failure", func(t *testing.T) {
		t.Parallel()

		failure := errors.New("no content")
		client := codewiki.NewClient(htmlRenderer(t, "<body></body>", nil, nil))
		client.Extractor = &mock.Extractor{
			ExtractFn: func(string, string) (*codewiki.ExtractResult, error) { return nil, failure },
		}
		client.Converter = &mock.Converter{
			ConvertFn: func(string, string) (string, error) {
				t.Fatal("converter must not be called")
				return "", nil
			},
		}

		_, err := client.ExportRepo(context.Background(), "acme", "widget")

		assert.ErrorIs(t, err, failure)
	})

	t.Run("propagates timeout", func(t *testing.T) {
		t.Parallel()

		client := codewiki.NewClient(timeoutRenderer())
		client.Extractor = &mock.Extractor{}
		client.Converter = &mock.Converter{}

		export, err := client.ExportRepo(context.Background(), "acme", "widget")

		assert.Nil(t, export)
		assert.Equal(t, codewiki.ETIMEOUT, codewiki.ErrorCode(err))
	})
}
