package helper

import (
	"github.com/google/uuid"

	"dancebook_backend/internals/constants"
)

// Identity is what the auth middleware knows about the caller.
type Identity struct {
	UserID        uuid.UUID
	Role          string
	Authenticated bool
	Active        bool
}

func Anonymous() Identity { return Identity{} }

type Action string

const (
	ActClassRead        Action = "class:read"
	ActClassWrite       Action = "class:write"
	ActInstructorList   Action = "instructor:list"
	ActInstructorRead   Action = "instructor:read"
	ActInstructorWrite  Action = "instructor:write"
	ActStudentRead      Action = "student:read"
	ActStudentWrite     Action = "student:write"
	ActProfile          Action = "profile:self"
	ActBookingOwn       Action = "booking:own"
	ActPaymentReadOwn   Action = "payment:read"
	ActPaymentManage    Action = "payment:manage"
	ActAttendanceManage Action = "attendance:manage"
	ActReportRead       Action = "report:read"
	ActSchoolInfoRead   Action = "school_info:read"
	ActSchoolInfoWrite  Action = "school_info:write"
	ActAccount          Action = "account:self"
)

type rule struct {
	public bool
	roles  []string // empty: any authenticated, active user
}

var rules = map[Action]rule{
	ActClassRead:        {public: true},
	ActSchoolInfoRead:   {public: true},
	ActClassWrite:       {roles: constants.StaffRoles},
	ActInstructorList:   {roles: constants.AdminOnly},
	ActInstructorRead:   {},
	ActInstructorWrite:  {roles: constants.AdminOnly},
	ActStudentRead:      {roles: constants.StaffRoles},
	ActStudentWrite:     {roles: constants.AdminOnly},
	ActProfile:          {},
	ActBookingOwn:       {},
	ActPaymentReadOwn:   {},
	ActPaymentManage:    {roles: constants.AdminOnly},
	ActAttendanceManage: {roles: constants.StaffRoles},
	ActReportRead:       {roles: constants.AdminOnly},
	ActSchoolInfoWrite:  {roles: constants.AdminOnly},
	ActAccount:          {},
}

// Allows is the single capability check used by every route. Unknown actions are denied.
func Allows(id Identity, act Action) bool {
	r, ok := rules[act]
	if !ok {
		return false
	}
	if r.public {
		return true
	}
	if !id.Authenticated || !id.Active {
		return false
	}
	if len(r.roles) == 0 {
		return true
	}
	for _, role := range r.roles {
		if role == id.Role {
			return true
		}
	}
	return false
}

// IsPublic reports whether act needs no authentication at all.
func IsPublic(act Action) bool {
	return rules[act].public
}
