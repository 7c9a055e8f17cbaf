package models

import "slices"

type Permission int

const (
	CASE_READ Permission = iota
	CASE_CREATE
	CASE_STATUS_UPDATE
	TRANSFER_REQUEST
	TRANSFER_REVIEW
	DOCUMENT_READ
	DOCUMENT_UPLOAD
	DOCUMENT_REVIEW
	DOCUMENT_SHARE
	DOCUMENT_REQUEST_CREATE
	BULK_EXECUTE
	NOTIFICATION_READ
	ANALYTICS_READ
	ASSISTANT_ASK
	USER_CREATE
	USER_READ
)

func (p Permission) String() string {
	switch p {
	case CASE_READ:
		return "CASE_READ"
	case CASE_CREATE:
		return "CASE_CREATE"
	case CASE_STATUS_UPDATE:
		return "CASE_STATUS_UPDATE"
	case TRANSFER_REQUEST:
		return "TRANSFER_REQUEST"
	case TRANSFER_REVIEW:
		return "TRANSFER_REVIEW"
	case DOCUMENT_READ:
		return "DOCUMENT_READ"
	case DOCUMENT_UPLOAD:
		return "DOCUMENT_UPLOAD"
	case DOCUMENT_REVIEW:
		return "DOCUMENT_REVIEW"
	case DOCUMENT_SHARE:
		return "DOCUMENT_SHARE"
	case DOCUMENT_REQUEST_CREATE:
		return "DOCUMENT_REQUEST_CREATE"
	case BULK_EXECUTE:
		return "BULK_EXECUTE"
	case NOTIFICATION_READ:
		return "NOTIFICATION_READ"
	case ANALYTICS_READ:
		return "ANALYTICS_READ"
	case ASSISTANT_ASK:
		return "ASSISTANT_ASK"
	case USER_CREATE:
		return "USER_CREATE"
	case USER_READ:
		return "USER_READ"
	default:
		return "UNKNOWN_PERMISSION"
	}
}

var CLIENT_PERMISSIONS = []Permission{
	CASE_READ,
	DOCUMENT_READ,
	DOCUMENT_UPLOAD,
	NOTIFICATION_READ,
	ANALYTICS_READ,
	ASSISTANT_ASK,
	USER_READ,
}

var LAWYER_PERMISSIONS = slices.Concat(CLIENT_PERMISSIONS, []Permission{
	CASE_STATUS_UPDATE,
	TRANSFER_REQUEST,
	TRANSFER_REVIEW,
	DOCUMENT_REVIEW,
	DOCUMENT_SHARE,
	DOCUMENT_REQUEST_CREATE,
	BULK_EXECUTE,
})

var JUDGE_PERMISSIONS = slices.Concat(LAWYER_PERMISSIONS, []Permission{
	CASE_CREATE,
})

var ADMIN_PERMISSIONS = slices.Concat(JUDGE_PERMISSIONS, []Permission{
	USER_CREATE,
})

var ROLES_PERMISSIONS = map[Role][]Permission{
	CLIENT: CLIENT_PERMISSIONS,
	LAWYER: LAWYER_PERMISSIONS,
	JUDGE:  JUDGE_PERMISSIONS,
	ADMIN:  ADMIN_PERMISSIONS,
}
