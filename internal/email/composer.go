package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"pricingdesk.app/server/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// Composer renders the outward emails of the approval workflow.
type Composer struct {
	frontendURL string
	tmpl        *template.Template
	md          goldmark.Markdown
}

func NewComposer(frontendURL string) (*Composer, error) {
	tmpl, err := template.New("email").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing email templates: %w", err)
	}

	return &Composer{
		frontendURL: strings.TrimRight(frontendURL, "/"),
		tmpl:        tmpl,
		// Raw HTML in comments is dropped by the default renderer.
		md: goldmark.New(
			goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}, nil
}

type view struct {
	Title   string
	Accent  string
	Request *model.PricingRequest

	InitialPrice string
	TargetPrice  string
	Difference   string
	Deviation    string

	Decision       string
	SuggestedPrice string
	FinalPrice     string
	Comments       template.HTML
	Actor          string

	Link        string
	Submitted   string
	DaysPending int

	Code       string
	TTLMinutes int
}

func (c *Composer) RequestSubmitted(req *model.PricingRequest) (Message, error) {
	v := c.priceView(req)
	v.Title = "AVO Carbon – Pricing Deviation Request"
	v.Accent = "#0f2a44"
	v.Link = fmt.Sprintf("%s/pl/%d", c.frontendURL, req.ID)

	return c.render("submitted", v, Message{
		Kind:      KindRequestSubmitted,
		To:        req.PLEmail,
		Subject:   fmt.Sprintf("Action required – Pricing deviation request (%s)", req.CostingNumber),
		RequestID: &req.ID,
	})
}

// PLDecision informs the requester of a Product Line approval or rejection.
func (c *Composer) PLDecision(req *model.PricingRequest) (Message, error) {
	v := c.priceView(req)
	v.Title = "Pricing Deviation – Product Line Decision"
	v.Accent = decisionAccent(req.Status)
	v.Decision = string(req.Status)
	v.SuggestedPrice = formatOptionalPrice(req.PLSuggestedPrice)
	v.FinalPrice = formatOptionalPrice(req.FinalApprovedPrice)
	v.Comments = c.markdown(req.PLComments)
	v.Link = c.requestLink(req.ID)

	return c.render("pl_decision", v, Message{
		Kind:      KindPLDecision,
		To:        req.RequesterEmail,
		Subject:   fmt.Sprintf("Pricing deviation – Product Line decision (%s)", req.CostingNumber),
		RequestID: &req.ID,
	})
}

func (c *Composer) Escalation(req *model.PricingRequest) (Message, error) {
	vp, ok := req.VP()
	if !ok {
		return Message{}, fmt.Errorf("request %d has no VP to escalate to", req.ID)
	}

	v := c.priceView(req)
	v.Title = "AVO Carbon – Pricing Deviation Escalation"
	v.Accent = "#0d6efd"
	v.Comments = c.markdown(req.PLComments)
	v.SuggestedPrice = formatOptionalPrice(req.PLSuggestedPrice)
	v.Actor = req.ProductLineResponsible().DisplayName()
	v.Link = c.frontendURL + "/vp"

	return c.render("escalation", v, Message{
		Kind:      KindEscalation,
		To:        vp.Email,
		Subject:   fmt.Sprintf("Action required – Pricing deviation escalation (%s)", req.CostingNumber),
		RequestID: &req.ID,
	})
}

func (c *Composer) VPDecision(req *model.PricingRequest) (Message, error) {
	v := c.priceView(req)
	v.Title = "Pricing Deviation – VP Final Decision"
	v.Accent = decisionAccent(req.Status)
	v.Decision = string(req.Status)
	v.SuggestedPrice = formatOptionalPrice(req.VPSuggestedPrice)
	v.FinalPrice = formatOptionalPrice(req.FinalApprovedPrice)
	v.Comments = c.markdown(req.VPComments)
	v.Link = c.requestLink(req.ID)

	return c.render("vp_decision", v, Message{
		Kind:      KindVPDecision,
		To:        req.RequesterEmail,
		Subject:   fmt.Sprintf("Pricing deviation – VP Final Decision (%s)", req.CostingNumber),
		RequestID: &req.ID,
	})
}

func (c *Composer) VerificationCode(to, code string, ttl time.Duration) (Message, error) {
	v := view{
		Title:      "Pricing Desk – Verification Code",
		Accent:     "#0f2a44",
		Code:       code,
		TTLMinutes: int(ttl.Minutes()),
	}

	return c.render("verification_code", v, Message{
		Kind:    KindVerificationCode,
		To:      to,
		Subject: "Your Pricing Desk verification code",
	})
}

// PLReminder nudges the Product Line responsible about a request pending
// since before the reminder threshold.
func (c *Composer) PLReminder(req *model.PricingRequest, now time.Time) (Message, error) {
	v := c.reminderView(req, now)
	v.Title = "Reminder"
	v.Accent = "#f59e0b"
	v.Link = c.frontendURL + "/pl"

	return c.render("pl_reminder", v, Message{
		Kind:      KindPLReminder,
		To:        req.PLEmail,
		Subject:   fmt.Sprintf("Reminder – Pending approval (%s)", req.CostingNumber),
		RequestID: &req.ID,
	})
}

func (c *Composer) VPReminder(req *model.PricingRequest, now time.Time) (Message, error) {
	vp, ok := req.VP()
	if !ok {
		return Message{}, fmt.Errorf("request %d has no VP to remind", req.ID)
	}

	v := c.reminderView(req, now)
	v.Title = "Urgent Reminder"
	v.Accent = "#dc3545"
	v.Actor = req.ProductLineResponsible().DisplayName()
	v.Link = c.frontendURL + "/vp"

	return c.render("vp_reminder", v, Message{
		Kind:      KindVPReminder,
		To:        vp.Email,
		Subject:   fmt.Sprintf("Urgent – Escalated request pending (%s)", req.CostingNumber),
		RequestID: &req.ID,
	})
}

func (c *Composer) render(name string, v view, msg Message) (Message, error) {
	var buf bytes.Buffer
	if err := c.tmpl.ExecuteTemplate(&buf, name, v); err != nil {
		return Message{}, fmt.Errorf("rendering %s email: %w", name, err)
	}
	msg.HTML = buf.String()
	return msg, nil
}

func (c *Composer) requestLink(id int64) string {
	return fmt.Sprintf("%s/pricing-requests/%d", c.frontendURL, id)
}

func (c *Composer) priceView(req *model.PricingRequest) view {
	return view{
		Request:      req,
		InitialPrice: FormatPrice(req.InitialPrice),
		TargetPrice:  FormatPrice(req.TargetPrice),
		Difference:   FormatPrice(req.InitialPrice.Sub(req.TargetPrice)),
		Deviation:    req.DeviationPercent().StringFixed(1),
	}
}

func (c *Composer) reminderView(req *model.PricingRequest, now time.Time) view {
	return view{
		Request:     req,
		Submitted:   req.CreatedAt.UTC().Format("2006-01-02 15:04"),
		DaysPending: int(now.Sub(req.CreatedAt).Hours() / 24),
	}
}

func (c *Composer) markdown(s *string) template.HTML {
	if s == nil || strings.TrimSpace(*s) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(*s), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(*s))
	}
	return template.HTML(buf.String()) //nolint:gosec // goldmark escapes raw HTML unless WithUnsafe is set
}

// FormatPrice renders an amount in euros with two decimals, e.g. "€12.50".
func FormatPrice(d decimal.Decimal) string {
	return "€" + d.StringFixed(2)
}

func formatOptionalPrice(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return FormatPrice(*d)
}

func decisionAccent(status model.RequestStatus) string {
	switch status {
	case model.RequestStatusApprovedByPL, model.RequestStatusApprovedByVP:
		return "#198754"
	case model.RequestStatusRejectedByPL, model.RequestStatusRejectedByVP:
		return "#dc3545"
	case model.RequestStatusEscalatedToVP:
		return "#0d6efd"
	}
	return "#666666"
}
