package commands

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testPage = `<html><body>
<div class="quote">
	<span class="text">“Be yourself; everyone else is already taken.”</span>
	<span>by <small class="author">Oscar Wilde</small></span>
	<div class="tags"><a class="tag" href="#">attributed</a><a class="tag" href="#">honesty</a></div>
</div>
<div class="quote">
	<span class="text">“So many books, so little time.”</span>
	<span>by <small class="author">Frank Zappa</small></span>
	<div class="tags"><a class="tag" href="#">books</a></div>
</div>
</body></html>`

func run(t testing.TB, args ...string) string {
	configPath = ""
	verbose = false
	exportPath = ""
	maxPages = 0

	out := bytes.NewBuffer(nil)
	rootCmd.SetOut(out)
	rootCmd.SetArgs(args)
	err := execute(context.Background(), &app{})
	require.NoError(t, err)
	return out.String()
}

// runFailing runs a command line that must fail and reports whether the
// resources registered for the run were closed.
func runFailing(t testing.TB, args ...string) (closed bool) {
	configPath = ""
	verbose = false
	exportPath = ""
	maxPages = 0

	a := &app{}
	a.onClose(func(ctx context.Context) error {
		closed = true
		return nil
	})
	rootCmd.SetOut(bytes.NewBuffer(nil))
	rootCmd.SetArgs(args)
	err := execute(context.Background(), a)
	require.Error(t, err)
	return closed
}

// writeConfig points the quotes scraper at baseUrl.
func writeConfig(t testing.TB, baseUrl string) string {
	path := filepath.Join(t.TempDir(), "toolbox.json5")
	contents := fmt.Sprintf(`{ quotes: { base_url: %q } }`, baseUrl)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func newTestSite(t testing.TB) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/page/1/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testPage))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestTempConvert(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "toolbox.json5")

	out := run(t, "--config", missing, "temp", "convert", "100", "c", "fahrenheit")
	require.Equal(t, "100°C = 212.00°F\n", out)

	out = run(t, "--config", missing, "temp", "convert", "0", "K", "C")
	require.Equal(t, "0K = -273.15°C\n", out)
}

func TestTempConvertInvalid(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "toolbox.json5")

	closed := runFailing(t, "--config", missing, "temp", "convert", "1", "C", "rankine")
	require.True(t, closed)
}

func TestFailedCommandStillCloses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()
	cfg := writeConfig(t, server.URL)

	closed := runFailing(t, "--config", cfg, "quotes", "page", "1")
	require.True(t, closed)

	// the same run after a failure starts from a fresh app
	out := run(t, "--config", filepath.Join(t.TempDir(), "toolbox.json5"), "temp", "convert", "32", "F", "C")
	require.Equal(t, "32°F = 0.00°C\n", out)
}

func TestQuotesPageAndExport(t *testing.T) {
	server := newTestSite(t)
	cfg := writeConfig(t, server.URL)
	csvPath := filepath.Join(t.TempDir(), "quotes.csv")

	out := run(t, "--config", cfg, "quotes", "page", "1", "--export", csvPath)
	require.Contains(t, out, "Oscar Wilde")
	require.Contains(t, out, "2 quotes")

	contents, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	require.Contains(t, string(contents), "Frank Zappa,books")
}

func TestQuotesSearchCommands(t *testing.T) {
	server := newTestSite(t)
	cfg := writeConfig(t, server.URL)

	out := run(t, "--config", cfg, "quotes", "author", "wilde", "--max-pages", "3")
	require.Contains(t, out, "Oscar Wilde")
	require.NotContains(t, out, "Frank Zappa")

	out = run(t, "--config", cfg, "quotes", "tag", "BOOKS")
	require.Contains(t, out, "Frank Zappa")
	require.Contains(t, out, "1 quotes")

	out = run(t, "--config", cfg, "quotes", "tag", "nothing")
	require.Contains(t, out, "No quotes found.")
}
