package ui

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// FlashCookieName carries a one-shot message across a redirect.
const FlashCookieName = "agrirent_flash"

// Flash is a message shown once on the next page.
type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

func (ui *UI) setFlash(w http.ResponseWriter, kind, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString([]byte(kind + "|" + msg)),
		Path:     "/",
		HttpOnly: true,
		Secure:   ui.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// popFlash reads and clears the flash cookie.
func (ui *UI) popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(FlashCookieName)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   ui.secure,
		MaxAge:   -1,
	})

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	kind, msg, ok := strings.Cut(string(raw), "|")
	if !ok {
		return nil
	}
	return &Flash{Kind: kind, Message: msg}
}
