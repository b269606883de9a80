package business

import (
	"net/url"
	"strings"

	"cardapio-be/internal/utils"
)

const whatsappGreeting = "Olá! Gostaria de fazer um pedido"

// Links are the deep links shown on the public business card.
type Links struct {
	Maps      string `json:"maps,omitempty"`
	Phone     string `json:"phone,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

func MapsURL(address string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(address)
}

func PhoneURL(phone string) string {
	return "tel:" + utils.Digits(phone)
}

func WhatsAppURL(phone, text string) string {
	return "https://wa.me/55" + utils.Digits(phone) + "?text=" + url.QueryEscape(text)
}

func InstagramURL(handle string) string {
	return "https://instagram.com/" + strings.TrimPrefix(strings.TrimSpace(handle), "@")
}

func (b *Business) Links() Links {
	var l Links
	if strings.TrimSpace(b.Address) != "" {
		l.Maps = MapsURL(b.Address)
	}
	if utils.Digits(b.Phone) != "" {
		l.Phone = PhoneURL(b.Phone)
		l.WhatsApp = WhatsAppURL(b.Phone, whatsappGreeting)
	}
	if b.Instagram != nil && strings.Trim(*b.Instagram, " @") != "" {
		l.Instagram = InstagramURL(*b.Instagram)
	}
	return l
}
