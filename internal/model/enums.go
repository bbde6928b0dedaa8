package model

// Role names a portal domain. Each role has its own session cookie and
// route prefix.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDeveloper Role = "developer"
	RoleClient    Role = "client"
)

var Roles = []Role{RoleAdmin, RoleDeveloper, RoleClient}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDeveloper, RoleClient:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusBlocked    TaskStatus = "BLOCKED"
)

type ReportStatus string

const (
	ReportStatusOnTrack   ReportStatus = "ON_TRACK"
	ReportStatusDelayed   ReportStatus = "DELAYED"
	ReportStatusCompleted ReportStatus = "COMPLETED"
	ReportStatusBlocked   ReportStatus = "BLOCKED"
)

type IssueType string

const (
	IssueTypeNone      IssueType = "NONE"
	IssueTypeTechnical IssueType = "TECHNICAL"
	IssueTypeBlocker   IssueType = "BLOCKER"
	IssueTypeResource  IssueType = "RESOURCE"
)

type InquiryStatus string

const (
	InquiryStatusUnread   InquiryStatus = "UNREAD"
	InquiryStatusRead     InquiryStatus = "READ"
	InquiryStatusArchived InquiryStatus = "ARCHIVED"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)
