// Package logos finds a usable logo image on each firm's homepage.
package logos

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/rm-hull/prop-firms-api/internal"
	"github.com/rm-hull/prop-firms-api/internal/models"
)

// Candidates in order of preference. Larger images come first.
var selectors = []struct {
	query string
	attr  string
}{
	{`meta[property="og:image"]`, "content"},
	{`link[rel="apple-touch-icon"]`, "href"},
	{`link[rel="icon"]`, "href"},
	{`link[rel="shortcut icon"]`, "href"},
}

type Result struct {
	Key      string `json:"key"`
	Homepage string `json:"homepage"`
	Logo     string `json:"logo,omitempty"`
	Error    string `json:"error,omitempty"`
}

type Finder struct {
	client *http.Client
}

func NewFinder(client *http.Client) *Finder {
	if client == nil {
		client = http.DefaultClient
	}
	return &Finder{client: client}
}

// Find fetches homepage and returns an absolute URL for its logo. Pages that
// advertise nothing get the conventional /favicon.ico.
func (lf *Finder) Find(ctx context.Context, homepage string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, homepage, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "text/html")

	resp, err := lf.client.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "failed to fetch %s", homepage)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("failed to close body: %v", err)
		}
	}()

	if resp.StatusCode > 299 {
		return "", &internal.HTTPStatusError{URL: homepage, Status: resp.Status, StatusCode: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse %s", homepage)
	}

	// Redirects may have moved us, so resolve against where we landed
	base := resp.Request.URL
	return Extract(doc, base), nil
}

// Extract picks the best logo reference in doc and resolves it against base.
func Extract(doc *goquery.Document, base *url.URL) string {
	for _, sel := range selectors {
		href := ""
		doc.Find(sel.query).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			href = strings.TrimSpace(s.AttrOr(sel.attr, ""))
			return href == ""
		})
		if href == "" {
			continue
		}
		ref, err := url.Parse(href)
		if err != nil {
			continue
		}
		return base.ResolveReference(ref).String()
	}
	return base.ResolveReference(&url.URL{Path: "/favicon.ico"}).String()
}

// FindAll looks up logos for every firm with a homepage, a few at a time.
// Failures are recorded per firm and never stop the others.
func (lf *Finder) FindAll(ctx context.Context, firms []models.Firm, concurrency int) []Result {
	targets := make([]models.Firm, 0, len(firms))
	for _, firm := range firms {
		if firm.Homepage != nil && *firm.Homepage != "" {
			targets = append(targets, firm)
		}
	}

	results := make([]Result, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, concurrency))

	for i, firm := range targets {
		g.Go(func() error {
			result := Result{Key: firm.Key, Homepage: *firm.Homepage}
			logo, err := lf.Find(gctx, *firm.Homepage)
			if err != nil {
				log.Printf("no logo for %s: %v", firm.Key, err)
				result.Error = err.Error()
			} else {
				result.Logo = logo
			}
			results[i] = result
			return nil
		})
	}

	_ = g.Wait()
	return results
}
