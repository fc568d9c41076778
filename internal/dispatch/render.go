package dispatch

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"unicode/utf8"

	"pricealert/internal/domain/entity"
	"pricealert/internal/domain/service"
)

const (
	smsMaxLength     = 160
	smsTruncation    = "..."
	maxPushTokens    = 500
	emailSubjectTag  = "[Price Alert] "
	pushCategoryBase = "PRICE_ALERT_"
)

// Push action identifiers registered on the mobile clients.
const (
	actionViewProduct  = "view_product"
	actionBuyNow       = "buy_now"
	actionViewHistory  = "view_history"
	actionAddToCart    = "add_to_cart"
	actionAdjustTarget = "adjust_target"
)

var pushActions = map[entity.AlertType][]string{
	entity.AlertTypePriceDrop:      {actionViewProduct, actionBuyNow},
	entity.AlertTypeHistoricalLow:  {actionViewProduct, actionBuyNow, actionViewHistory},
	entity.AlertTypeStockAvailable: {actionViewProduct, actionAddToCart},
	entity.AlertTypeBackInStock:    {actionViewProduct, actionAddToCart},
	entity.AlertTypePriceTarget:    {actionViewProduct, actionBuyNow, actionAdjustTarget},
}

// actionsFor returns the action buttons offered for an alert type.
func actionsFor(t entity.AlertType) []string {
	if actions, ok := pushActions[t]; ok {
		return append([]string(nil), actions...)
	}

	return []string{actionViewProduct}
}

var emailTemplate = template.Must(template.New("alert_email").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body style="font-family: Arial, sans-serif; color: #222;">
  {{if .Name}}<p>Hi {{.Name}},</p>{{end}}
  <h2>{{.Title}}</h2>
  <p>{{.Message}}</p>
  {{if .ProductName}}<p><strong>{{.ProductName}}</strong></p>{{end}}
  {{if .CurrentPrice}}<p>Now: <strong>{{.CurrentPrice}}</strong>{{if .PreviousPrice}} (was {{.PreviousPrice}}){{end}}</p>{{end}}
  {{if .ImageURL}}<p><img src="{{.ImageURL}}" alt="{{.ProductName}}" width="240"></p>{{end}}
  {{if .ProductURL}}<p><a href="{{.ProductURL}}">View product</a></p>{{end}}
  <p style="font-size: 12px; color: #888;">You receive this email because you created a price alert.</p>
</body>
</html>`))

type emailView struct {
	Name          string
	Title         string
	Message       string
	ProductName   string
	CurrentPrice  string
	PreviousPrice string
	ProductURL    string
	ImageURL      string
}

// alertString reads a string-ish value from the alert payload.
func alertString(alert *entity.Alert, key string) string {
	v, ok := alert.AlertData[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}

// renderEmail builds the HTML and plain-text bodies of an alert email.
func renderEmail(alert *entity.Alert, rcpt *entity.Recipient) (*service.EmailMessage, error) {
	view := emailView{
		Name:          rcpt.Name,
		Title:         alert.Title,
		Message:       alert.Message,
		ProductName:   alertString(alert, "product_name"),
		CurrentPrice:  alertString(alert, "current_price"),
		PreviousPrice: alertString(alert, "previous_price"),
		ProductURL:    alertString(alert, "product_url"),
		ImageURL:      alertString(alert, "image_url"),
	}

	var html bytes.Buffer
	if err := emailTemplate.Execute(&html, view); err != nil {
		return nil, fmt.Errorf("failed to render email: %w", err)
	}

	text := alert.Title + "\n\n" + alert.Message
	if view.ProductURL != "" {
		text += "\n\n" + view.ProductURL
	}

	return &service.EmailMessage{
		To:       rcpt.Email,
		Subject:  emailSubjectTag + alert.Title,
		HTMLBody: html.String(),
		TextBody: text,
		Tag:      string(alert.Type),
	}, nil
}

// renderSMS builds a text message of at most 160 characters.
func renderSMS(alert *entity.Alert) string {
	var prefix string
	switch alert.Priority {
	case entity.PriorityUrgent:
		prefix = "URGENT: "
	case entity.PriorityHigh:
		prefix = "! "
	}

	body := prefix + alert.Title
	if alert.Message != "" {
		body += " - " + alert.Message
	}
	if url := alertString(alert, "product_url"); url != "" {
		body += " " + url
	}

	return truncateRunes(body, smsMaxLength)
}

// truncateRunes cuts s to limit runes, ending with the truncation marker when cut.
func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)
	keep := limit - utf8.RuneCountInString(smsTruncation)

	return strings.TrimRight(string(runes[:keep]), " ") + smsTruncation
}

// renderPush builds the push payload without device tokens.
func renderPush(alert *entity.Alert) *service.PushMessage {
	actions := actionsFor(alert.Type)

	data := make(map[string]string, len(alert.AlertData)+5)
	for k := range alert.AlertData {
		data[k] = alertString(alert, k)
	}
	data["alert_id"] = alert.ID.String()
	data["alert_type"] = string(alert.Type)
	data["product_id"] = alert.ProductID
	data["priority"] = string(alert.Priority)
	data["actions"] = strings.Join(actions, ",")

	return &service.PushMessage{
		Title:        alert.Title,
		Body:         alert.Message,
		ImageURL:     alertString(alert, "image_url"),
		Data:         data,
		Category:     pushCategoryBase + strings.ToUpper(string(alert.Type)),
		HighPriority: alert.Priority == entity.PriorityHigh || alert.Priority == entity.PriorityUrgent,
	}
}
