// Package httputil fetches remote documents over HTTP with caching and
// retry. The migration flow uses it for URL sources: legacy dashboard
// exports served by another system.
//
// [Client] issues GET requests and decodes JSON. [Cache] keeps fetched
// documents on disk (by default under ~/.cache/gridpush/http) so repeated
// migration runs against the same export don't re-download it. [Retry]
// re-runs transient failures, network errors and 5xx responses, with
// exponential backoff; 404s and malformed responses fail immediately.
//
// The pieces compose through [Client.Cached]:
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	client := httputil.NewClient(cache.Namespace("legacy:"), nil)
//	var rows []row
//	err = client.Cached(ctx, url, false, &rows, func() error {
//	    return client.Get(ctx, url, &rows)
//	})
package httputil
