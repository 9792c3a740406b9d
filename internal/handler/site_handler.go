package handler

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/shutterfolio/backend/internal/service"
)

// SiteHandler serves crawler rules, legal pages and public configuration.
type SiteHandler struct {
	publicSiteURL string
	legal         fs.FS
	images        *service.ImageHosts
}

// NewSiteHandler creates a SiteHandler. legalDir holds the Markdown legal
// documents; images is the allow-list advertised to clients.
func NewSiteHandler(publicSiteURL, legalDir string, images *service.ImageHosts) *SiteHandler {
	return &SiteHandler{
		publicSiteURL: strings.TrimRight(publicSiteURL, "/"),
		legal:         os.DirFS(legalDir),
		images:        images,
	}
}

// Robots handles GET /robots.txt. The admin area is never indexed.
func (h *SiteHandler) Robots(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /admin\n")
	b.WriteString("Disallow: /api/admin\n")
	if h.publicSiteURL != "" {
		fmt.Fprintf(&b, "\nSitemap: %s/sitemap.xml\n", h.publicSiteURL)
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(b.String()))
}

// legalDocuments maps the public document names onto files in the legal dir.
var legalDocuments = map[string]string{
	"terms-of-service": "terms-of-service.md",
	"privacy-policy":   "privacy-policy.md",
}

// Legal handles GET /api/legal/{type}. Only the documents in legalDocuments
// can be requested; anything else is 404.
func (h *SiteHandler) Legal(w http.ResponseWriter, r *http.Request) {
	name, ok := legalDocuments[r.PathValue("type")]
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	content, err := fs.ReadFile(h.legal, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

// AllowedImageHosts handles GET /api/images/allowed-hosts.
func (h *SiteHandler) AllowedImageHosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"hosts": h.images.Patterns()})
}
