package notify

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"pricingdesk.app/server/internal/email"
	"pricingdesk.app/server/internal/model"
)

const commentPreviewLen = 100

// Planned is one in-app notification to be persisted for one recipient.
type Planned struct {
	RecipientEmail string
	RecipientRole  model.Role
	Type           model.NotificationType
	Title          string
	Message        string
	TriggeredBy    model.Party
	ActionURL      string
}

// Notification materializes the plan as a storable record.
func (p Planned) Notification(id, requestID int64) *model.Notification {
	n := &model.Notification{
		ID:               id,
		RecipientEmail:   p.RecipientEmail,
		RecipientRole:    p.RecipientRole,
		RequestID:        requestID,
		Type:             p.Type,
		Title:            p.Title,
		Message:          p.Message,
		TriggeredByEmail: p.TriggeredBy.Email,
		TriggeredByName:  p.TriggeredBy.Name,
	}
	if p.ActionURL != "" {
		url := p.ActionURL
		n.ActionURL = &url
	}
	return n
}

// ActionURL is the deep link every notification about a request carries.
func ActionURL(requestID int64) string {
	return fmt.Sprintf("/pricing-requests/%d", requestID)
}

func PlanSubmission(req *model.PricingRequest) []Planned {
	return []Planned{{
		RecipientEmail: req.PLEmail,
		RecipientRole:  model.RolePL,
		Type:           model.NotificationTypeRequestSubmitted,
		Title:          "New Pricing Deviation Request",
		Message: fmt.Sprintf("%s submitted a pricing deviation request for %s (%s).",
			req.RequesterName, req.ProjectName, req.CostingNumber),
		TriggeredBy: req.Requester(),
		ActionURL:   ActionURL(req.ID),
	}}
}

// PlanTransition routes a committed decision. req must already reflect ev.
func PlanTransition(req *model.PricingRequest, ev *model.TransitionEvent) []Planned {
	link := ActionURL(req.ID)

	switch ev.Role {
	case model.RolePL:
		pl := req.ProductLineResponsible()
		switch ev.Action {
		case model.ActionApprove:
			return []Planned{{
				RecipientEmail: req.RequesterEmail,
				RecipientRole:  model.RoleCommercial,
				Type:           model.NotificationTypePLApproved,
				Title:          "PL Approved Your Request",
				Message:        "PL Manager approved your deviation request and suggested " + priceOf(ev.FinalPrice),
				TriggeredBy:    pl,
				ActionURL:      link,
			}}
		case model.ActionReject:
			return []Planned{{
				RecipientEmail: req.RequesterEmail,
				RecipientRole:  model.RoleCommercial,
				Type:           model.NotificationTypePLRejected,
				Title:          "PL Rejected Your Request",
				Message:        "PL Manager rejected your deviation request. Please check the comments for details.",
				TriggeredBy:    pl,
				ActionURL:      link,
			}}
		case model.ActionEscalate:
			vp, ok := req.VP()
			if !ok {
				return nil
			}
			return []Planned{{
				RecipientEmail: vp.Email,
				RecipientRole:  model.RoleVP,
				Type:           model.NotificationTypePLEscalated,
				Title:          "PL Escalated a Request to You",
				Message: fmt.Sprintf("%s escalated %s (%s) to you for final decision.",
					pl.DisplayName(), req.ProjectName, req.CostingNumber),
				TriggeredBy: pl,
				ActionURL:   link,
			}}
		}
	case model.RoleVP:
		vp, _ := req.VP()
		switch ev.Action {
		case model.ActionApprove:
			return []Planned{{
				RecipientEmail: req.RequesterEmail,
				RecipientRole:  model.RoleCommercial,
				Type:           model.NotificationTypeVPApproved,
				Title:          "VP Approved Your Request",
				Message:        "VP approved your deviation request with final price " + priceOf(ev.FinalPrice),
				TriggeredBy:    vp,
				ActionURL:      link,
			}}
		case model.ActionReject:
			return []Planned{{
				RecipientEmail: req.RequesterEmail,
				RecipientRole:  model.RoleCommercial,
				Type:           model.NotificationTypeVPRejected,
				Title:          "VP Rejected Your Request",
				Message:        "VP rejected your deviation request. Please check the comments for details.",
				TriggeredBy:    vp,
				ActionURL:      link,
			}}
		}
	}
	return nil
}

// PlanComment routes a new comment by its author's role on the request.
// Each party is addressed at most once, and never the author.
func PlanComment(req *model.PricingRequest, c *model.Comment) []Planned {
	pl := recipient{req.PLEmail, model.RolePL}
	requester := recipient{req.RequesterEmail, model.RoleCommercial}
	vpParty, hasVP := req.VP()
	vp := recipient{vpParty.Email, model.RoleVP}
	vpEngaged := hasVP && req.Status.IsVPEngaged() && !strings.EqualFold(vp.email, pl.email)

	var targets []recipient
	switch c.AuthorRole {
	case model.RolePL:
		targets = append(targets, requester)
		if vpEngaged {
			targets = append(targets, vp)
		}
	case model.RoleVP:
		targets = append(targets, pl)
	default:
		targets = append(targets, pl)
		if vpEngaged {
			targets = append(targets, vp)
		}
	}

	author := model.Party{Email: c.AuthorEmail}
	if c.AuthorName != "" {
		name := c.AuthorName
		author.Name = &name
	}
	message := fmt.Sprintf("%s commented: %s", author.DisplayName(), preview(c.Content))

	seen := map[string]bool{strings.ToLower(c.AuthorEmail): true}
	var planned []Planned
	for _, t := range targets {
		key := strings.ToLower(t.email)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		planned = append(planned, Planned{
			RecipientEmail: t.email,
			RecipientRole:  t.role,
			Type:           model.NotificationTypeNewComment,
			Title:          "New Comment on Your Request",
			Message:        message,
			TriggeredBy:    author,
			ActionURL:      ActionURL(req.ID),
		})
	}
	return planned
}

type recipient struct {
	email string
	role  model.Role
}

func preview(content string) string {
	runes := []rune(strings.TrimSpace(content))
	if len(runes) <= commentPreviewLen {
		return string(runes)
	}
	return string(runes[:commentPreviewLen]) + "..."
}

func priceOf(p *decimal.Decimal) string {
	if p == nil {
		return "n/a"
	}
	return email.FormatPrice(*p)
}
