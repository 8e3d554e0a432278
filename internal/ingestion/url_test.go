package ingestion

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postingHTML(body string) string {
	return fmt.Sprintf(`<html>
	<body>
		<nav>Jobs Home About</nav>
		<div class="job-description">%s</div>
		<footer>Copyright</footer>
	</body>
</html>`, body)
}

func TestIngestURL_ExtractsJobText(t *testing.T) {
	// Body long enough that the headless-browser fallback never triggers.
	body := "<p>We are hiring a backend engineer with python and postgresql experience.</p>" +
		strings.Repeat("<p>You will design, build and operate data services used across the company.</p>", 10)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(postingHTML(body)))
	}))
	defer server.Close()

	doc, err := IngestURL(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Contains(t, doc.Text, "backend engineer")
	assert.Contains(t, doc.Text, "postgresql")
	assert.NotContains(t, doc.Text, "Copyright")

	require.NotNil(t, doc.Metadata)
	assert.Equal(t, server.URL, doc.Metadata.Source)
	assert.Equal(t, "html", doc.Metadata.Method)
	assert.Greater(t, doc.Metadata.Words, 0)
}

func TestIngestURL_HTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := IngestURL(context.Background(), server.URL)
	require.Error(t, err)

	var docErr *DocumentError
	require.ErrorAs(t, err, &docErr)
	assert.Equal(t, server.URL, docErr.Path)
}

func TestIngestURL_InvalidURL(t *testing.T) {
	_, err := IngestURL(context.Background(), "::not-a-url::")
	require.Error(t, err)
}
