package main

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"card-server/internal/util"
	"card-server/templates"
	"github.com/skip2/go-qrcode"
)

// Compiled page templates, populated once at startup by initTemplates.
var (
	homeTemplate     *template.Template
	cardTemplate     *template.Template
	createTemplate   *template.Template
	notFoundTemplate *template.Template
)

// initTemplates compiles all page templates. Called once from main before
// the server starts; a broken template is a startup failure, not a 500.
func initTemplates() {
	base := templates.GetBaseTemplates()
	homeTemplate = util.MustCompileTemplate("home", nil, base+templates.GetHomeTemplate())
	cardTemplate = util.MustCompileTemplate("card", nil, base+templates.GetCardTemplate())
	createTemplate = util.MustCompileTemplate("create", nil, base+templates.GetCreateTemplate())
	notFoundTemplate = util.MustCompileTemplate("notfound", nil, base+templates.GetNotFoundTemplate())
}

type homePageData struct {
	Title   string
	Flash   FlashMessages
	Recents []RecencyRecord
}

type cardPageData struct {
	Title string
	Flash FlashMessages
	Card  Card
}

type createPageData struct {
	Title string
	Flash FlashMessages
	Error string
	Form  createForm
}

type notFoundPageData struct {
	Title   string
	Flash   FlashMessages
	Message string
}

// createForm carries form values through a failed submit so the user
// never loses what they typed.
type createForm struct {
	Username    string
	Name        string
	Role        string
	Description string
	VideoLink   string
	Links       []ProfileLink
	Theme       Theme
}

const createFormLinkRows = 3

func defaultCreateForm() createForm {
	return createForm{
		Links: make([]ProfileLink, createFormLinkRows),
		Theme: DefaultTheme(),
	}
}

// requestOrigin returns the absolute origin used in share URLs. BASE_URL
// wins when configured; otherwise it is derived from the request so QR
// codes point back at whatever host served them.
func requestOrigin(r *http.Request) string {
	if appBaseURL != "" {
		return strings.TrimRight(appBaseURL, "/")
	}
	scheme := "http"
	if shouldSecureCookie(r) {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func renderPage(w http.ResponseWriter, r *http.Request, t *template.Template, status int, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		LoggerFromContext(r.Context()).Error("template render failed", "template", t.Name(), "error", err)
	}
}

// htmlHomeHandler serves the landing page with the recent cards grid.
func htmlHomeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	recents, err := appRepo.Recents(r.Context())
	if err != nil {
		LoggerFromContext(r.Context()).Error("recents lookup failed", "error", err)
		recents = nil
	}
	for i := range recents {
		recents[i].Name = util.TruncateString(recents[i].Name, 40)
	}

	renderPage(w, r, homeTemplate, http.StatusOK, homePageData{
		Title:   "Home",
		Flash:   getFlashMessages(w, r),
		Recents: recents,
	})
}

// htmlCardHandler dispatches /card/{username} and its qr.png sub-resource.
func htmlCardHandler(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/card/")
	if username, ok := strings.CutSuffix(rest, "/qr.png"); ok {
		qrImageHandler(w, r, username)
		return
	}
	if rest == "" || strings.Contains(rest, "/") {
		http.NotFound(w, r)
		return
	}
	cardPage(w, r, rest)
}

func cardPage(w http.ResponseWriter, r *http.Request, username string) {
	ctx := r.Context()

	profile, err := appRepo.Lookup(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			renderPage(w, r, notFoundTemplate, http.StatusNotFound, notFoundPageData{
				Title:   "Not found",
				Flash:   getFlashMessages(w, r),
				Message: fmt.Sprintf("No card exists for %q. It may not be published yet.", username),
			})
			return
		}
		LoggerFromContext(ctx).Error("card lookup failed", "username", username, "error", err)
		redirectWithError(w, r, "/", friendlyError(err))
		return
	}

	theme := ResolveTheme(profile.ThemeColors)
	image := ResolveImage(profile, func(u string) (string, bool) {
		return appStore.GetAuxiliaryImage(ctx, u)
	})
	card := BuildCard(profile, theme, image, requestOrigin(r))

	IncrementCardView()
	renderPage(w, r, cardTemplate, http.StatusOK, cardPageData{
		Title: card.Username,
		Flash: getFlashMessages(w, r),
		Card:  card,
	})
}

// qrImageHandler serves the QR code PNG for a card. Uses Find, not Lookup:
// fetching the bitmap for a page already being viewed is not a second view.
func qrImageHandler(w http.ResponseWriter, r *http.Request, username string) {
	if username == "" || strings.Contains(username, "/") {
		http.NotFound(w, r)
		return
	}

	if _, err := appRepo.Find(r.Context(), username); err != nil {
		http.NotFound(w, r)
		return
	}

	size := parseQRSize(r.URL.Query().Get("size"))
	png, err := encodeQRPNG(ShareURL(requestOrigin(r), username), size, qrForeground, qrBackground, qrcode.Highest)
	if err != nil {
		LoggerFromContext(r.Context()).Error("qr encode failed", "username", username, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(png)
}

// htmlCreateCardHandler serves the creation form and handles submits.
func htmlCreateCardHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		renderPage(w, r, createTemplate, http.StatusOK, createPageData{
			Title: "Create a card",
			Flash: getFlashMessages(w, r),
			Form:  defaultCreateForm(),
		})
	case http.MethodPost:
		handleCreateCardSubmit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func handleCreateCardSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(4 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		renderCreateError(w, r, http.StatusBadRequest, "Could not read the form. The image file may be too large.", defaultCreateForm())
		return
	}

	form := createForm{
		Username:    strings.TrimSpace(r.FormValue("username")),
		Name:        strings.TrimSpace(r.FormValue("name")),
		Role:        strings.TrimSpace(r.FormValue("role")),
		Description: strings.TrimSpace(r.FormValue("description")),
		VideoLink:   strings.TrimSpace(r.FormValue("video_link")),
		Links:       parseLinkRows(r.Form["link_label"], r.Form["link_url"]),
		Theme: Theme{
			Primary:    strings.TrimSpace(r.FormValue("theme_primary")),
			Secondary:  strings.TrimSpace(r.FormValue("theme_secondary")),
			Text:       strings.TrimSpace(r.FormValue("theme_text")),
			AccentText: strings.TrimSpace(r.FormValue("theme_accent_text")),
			CardBg:     strings.TrimSpace(r.FormValue("theme_card_bg")),
		},
	}

	inlineImage, imageName, err := readUploadedImage(r)
	if err != nil {
		renderCreateError(w, r, http.StatusBadRequest, "Please upload a valid image file.", form)
		return
	}

	profile := &Profile{
		Username:    form.Username,
		Name:        form.Name,
		Role:        form.Role,
		Description: form.Description,
		Image:       imageName,
		Links:       util.FilterSlice(form.Links, ProfileLink.Complete),
		VideoLink:   form.VideoLink,
	}
	if form.Theme != (Theme{}) {
		theme := form.Theme
		profile.ThemeColors = &theme
	}

	if err := appRepo.Create(ctx, profile, inlineImage); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrDuplicateUsername) {
			status = http.StatusConflict
		} else if !errors.Is(err, ErrValidation) && !errors.Is(err, ErrImageTooLarge) {
			LoggerFromContext(ctx).Error("card creation failed", "username", form.Username, "error", err)
			status = http.StatusInternalServerError
		}
		renderCreateError(w, r, status, friendlyError(err), form)
		return
	}

	LoggerFromContext(ctx).Info("card created", "username", profile.Username)
	redirectWithSuccess(w, r, "/card/"+profile.Username, fmt.Sprintf("Business card for %s created.", profile.Name))
}

func renderCreateError(w http.ResponseWriter, r *http.Request, status int, message string, form createForm) {
	for len(form.Links) < createFormLinkRows {
		form.Links = append(form.Links, ProfileLink{})
	}
	renderPage(w, r, createTemplate, status, createPageData{
		Title: "Create a card",
		Flash: getFlashMessages(w, r),
		Error: message,
		Form:  form,
	})
}

// parseLinkRows pairs up the parallel label/url form arrays.
func parseLinkRows(labels, urls []string) []ProfileLink {
	n := len(labels)
	if len(urls) < n {
		n = len(urls)
	}
	links := make([]ProfileLink, 0, n)
	for i := 0; i < n; i++ {
		links = append(links, ProfileLink{
			Label: strings.TrimSpace(labels[i]),
			URL:   strings.TrimSpace(urls[i]),
		})
	}
	return links
}

// readUploadedImage turns the optional file upload into an inline data URL
// plus the original file name. Returns ("", "", nil) when no file was sent.
func readUploadedImage(r *http.Request) (payload, name string, err error) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", "", nil
	}
	if err != nil {
		return "", "", fmt.Errorf("%w: image upload unreadable", ErrValidation)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", "", fmt.Errorf("%w: image upload unreadable", ErrValidation)
	}
	if len(data) == 0 {
		return "", "", nil
	}

	mime := header.Header.Get("Content-Type")
	if mime == "" || mime == "application/octet-stream" {
		mime = http.DetectContentType(data)
	}
	if !strings.HasPrefix(mime, "image/") {
		return "", "", fmt.Errorf("%w: uploaded file is not an image", ErrValidation)
	}

	payload = "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	name = header.Filename
	if name == "" {
		name = "upload"
	}
	return payload, name, nil
}

// healthHandler reports liveness plus which backends are in play.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":             "ok",
		"kv_backend":         kvBackendType,
		"catalog_configured": appCatalogConfigured,
	})
}
