package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rishi-ann/redlix-portal/internal/model"
)

type credentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type clientLoginRequest struct {
	ClientID string `json:"clientId" validate:"required"`
}

type clientFields struct {
	Name         *string   `json:"name"`
	ContactName  *string   `json:"contactName"`
	Email        *string   `json:"email"`
	Mobile       *string   `json:"mobile"`
	TotalBudget  *float64  `json:"totalBudget" validate:"omitempty,gte=0"`
	AmountPaid   *float64  `json:"amountPaid" validate:"omitempty,gte=0"`
	StartDate    *flexDate `json:"startDate"`
	EndDate      *flexDate `json:"endDate"`
	DeveloperIDs []string  `json:"developerIds"`
}

type createClientRequest struct {
	ID string `json:"id"`
	clientFields
}

func (req *createClientRequest) params() model.CreateClientParams {
	p := model.CreateClientParams{
		ID:           strings.TrimSpace(req.ID),
		ContactName:  req.ContactName,
		Email:        req.Email,
		Mobile:       req.Mobile,
		TotalBudget:  req.TotalBudget,
		AmountPaid:   req.AmountPaid,
		StartDate:    req.StartDate.Time(),
		EndDate:      req.EndDate.Time(),
		DeveloperIDs: req.DeveloperIDs,
	}
	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	return p
}

type updateClientRequest struct {
	ID    string  `json:"id"`
	NewID *string `json:"newId"`
	// DeveloperID is the single-developer form older admin pages send.
	DeveloperID *string `json:"developerId"`
	clientFields
}

func (req *updateClientRequest) params() model.UpdateClientParams {
	p := model.UpdateClientParams{
		NewID:        req.NewID,
		Name:         req.Name,
		ContactName:  req.ContactName,
		Email:        req.Email,
		Mobile:       req.Mobile,
		TotalBudget:  req.TotalBudget,
		AmountPaid:   req.AmountPaid,
		StartDate:    req.StartDate.Time(),
		EndDate:      req.EndDate.Time(),
		DeveloperIDs: req.DeveloperIDs,
	}
	if p.DeveloperIDs == nil && req.DeveloperID != nil {
		p.DeveloperIDs = []string{}
		if *req.DeveloperID != "" {
			p.DeveloperIDs = append(p.DeveloperIDs, *req.DeveloperID)
		}
	}
	return p
}

type assignTaskRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	DeveloperID string  `json:"developerId" validate:"required"`
	ClientID    *string `json:"clientId"`
}

type taskStatusRequest struct {
	TaskID string           `json:"taskId" validate:"required"`
	Status model.TaskStatus `json:"status" validate:"required,oneof=PENDING IN_PROGRESS COMPLETED BLOCKED"`
}

type inquiryStatusRequest struct {
	ID     string              `json:"id" validate:"required"`
	Status model.InquiryStatus `json:"status" validate:"required,oneof=UNREAD READ ARCHIVED"`
}

type requestStatusRequest struct {
	ID     string              `json:"id" validate:"required"`
	Status model.RequestStatus `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED"`
}

type reportRequest struct {
	ClientID         string             `json:"clientId" validate:"required"`
	Status           model.ReportStatus `json:"status" validate:"required,oneof=ON_TRACK DELAYED COMPLETED BLOCKED"`
	Summary          string             `json:"summary" validate:"required"`
	DocumentURL      *string            `json:"documentUrl"`
	IssueType        model.IssueType    `json:"issueType" validate:"omitempty,oneof=NONE TECHNICAL BLOCKER RESOURCE"`
	IssueDescription *string            `json:"issueDescription"`
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type projectRequestRequest struct {
	ClientName   string  `json:"clientName" validate:"required"`
	ClientEmail  string  `json:"clientEmail" validate:"required,email"`
	ProjectTitle string  `json:"projectTitle" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	Budget       *string `json:"budget"`
}

type documentUploadRequest struct {
	Title       string    `json:"title" validate:"required"`
	Type        string    `json:"type"`
	Size        flexInt64 `json:"size"`
	Description *string   `json:"description"`
	Content     string    `json:"content" validate:"required"`
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// flexDate accepts the date shapes browser forms produce: a bare date, a
// datetime-local value or a full RFC 3339 timestamp. Empty strings and null
// decode to no date.
type flexDate struct {
	t *time.Time
}

func (d *flexDate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		d.t = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := parseDate(s)
	if err != nil {
		return err
	}
	d.t = t
	return nil
}

func (d *flexDate) Time() *time.Time {
	if d == nil {
		return nil
	}
	return d.t
}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date %q", s)
}

// flexInt64 accepts a JSON number or a numeric string.
type flexInt64 int64

func (n *flexInt64) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	raw := strings.Trim(string(data), `"`)
	if raw == "" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return fmt.Errorf("size must be a number: %w", err)
		}
		v = int64(f)
	}
	*n = flexInt64(v)
	return nil
}
