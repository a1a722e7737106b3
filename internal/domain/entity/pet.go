package entity

import (
	"net/url"
	"strings"
)

// Pet is a tagged pet as stored in the pet directory.
type Pet struct {
	ID         string `json:"id"`          // Identifier encoded in the NFC tag.
	Name       string `json:"name"`        // Display name of the pet.
	OwnerPhone string `json:"owner_phone"` // Owner phone number in E.164 format.
	PhotoURL   string `json:"photo_url"`   // Optional photo shown on the pet page.
}

// WhatsAppLink builds a wa.me deep link with a greeting for the owner.
func (p *Pet) WhatsAppLink() string {
	phone := strings.TrimPrefix(p.OwnerPhone, "+")
	if phone == "" {
		return ""
	}

	return "https://wa.me/" + phone + "?text=" + url.QueryEscape("Hi, I found "+p.Name)
}

// CallLink builds a tel: link for the owner.
func (p *Pet) CallLink() string {
	if p.OwnerPhone == "" {
		return ""
	}

	return "tel:" + p.OwnerPhone
}
