package build

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// verifyInternalLinks parses every rendered page and checks that
// site-absolute hrefs and srcs resolve to a page, a copied asset, or the
// feed. Findings are advisory: a broken link is worth flagging but not
// worth refusing to publish over, unlike the structural errors the earlier
// stages raise.
func verifyInternalLinks(pages []Page, assets []string, atomEnabled bool) []string {
	targets := make(map[string]struct{}, len(pages)+len(assets)+1)
	for _, p := range pages {
		targets[p.Path] = struct{}{}
	}
	for _, a := range assets {
		targets[a] = struct{}{}
	}
	if atomEnabled {
		targets[atomFeedName] = struct{}{}
	}

	var warnings []string
	for _, p := range pages {
		for _, ref := range extractRefs(p.HTML) {
			target, internal := resolveInternalRef(ref)
			if !internal {
				continue
			}
			if _, ok := targets[target]; !ok {
				warnings = append(warnings, fmt.Sprintf("%s: %s does not resolve", p.Path, ref))
			}
		}
	}
	return warnings
}

// extractRefs returns the href and src attribute values of a page in
// document order.
func extractRefs(page string) []string {
	var refs []string
	tokenizer := html.NewTokenizer(strings.NewReader(page))
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			return refs
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		token := tokenizer.Token()
		for _, attr := range token.Attr {
			if attr.Key == "href" || attr.Key == "src" {
				refs = append(refs, attr.Val)
			}
		}
	}
}

// resolveInternalRef maps a site-absolute reference to an output tree path.
// External references (with a scheme or host) and fragments report internal
// as false.
func resolveInternalRef(ref string) (target string, internal bool) {
	if ref == "" || strings.HasPrefix(ref, "#") {
		return "", false
	}
	if strings.Contains(ref, "://") || strings.HasPrefix(ref, "//") ||
		strings.HasPrefix(ref, "mailto:") {
		return "", false
	}
	if !strings.HasPrefix(ref, "/") {
		// Relative references depend on the containing page's directory;
		// listings and layouts emit site-absolute links, so these are left
		// unchecked.
		return "", false
	}

	trimmed := strings.TrimPrefix(ref, "/")
	if i := strings.IndexAny(trimmed, "#?"); i >= 0 {
		trimmed = trimmed[:i]
	}
	switch {
	case trimmed == "":
		return "index.html", true
	case strings.HasSuffix(trimmed, "/"):
		return trimmed + "index.html", true
	default:
		return trimmed, true
	}
}
