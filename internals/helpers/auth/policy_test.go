package helper

import (
	"testing"

	"github.com/google/uuid"

	"dancebook_backend/internals/constants"
)

func TestAllows(t *testing.T) {
	uid := uuid.New()
	student := Identity{UserID: uid, Role: constants.RoleStudent, Authenticated: true, Active: true}
	instructor := Identity{UserID: uid, Role: constants.RoleInstructor, Authenticated: true, Active: true}
	admin := Identity{UserID: uid, Role: constants.RoleAdmin, Authenticated: true, Active: true}
	inactiveAdmin := admin
	inactiveAdmin.Active = false
	anon := Anonymous()

	tests := []struct {
		name string
		id   Identity
		act  Action
		want bool
	}{
		{"anon reads classes", anon, ActClassRead, true},
		{"anon reads school info", anon, ActSchoolInfoRead, true},
		{"anon cannot book", anon, ActBookingOwn, false},
		{"student books", student, ActBookingOwn, true},
		{"student cannot write classes", student, ActClassWrite, false},
		{"instructor writes classes", instructor, ActClassWrite, true},
		{"instructor cannot read reports", instructor, ActReportRead, false},
		{"admin reads reports", admin, ActReportRead, true},
		{"inactive admin denied", inactiveAdmin, ActReportRead, false},
		{"student reads instructor detail", student, ActInstructorRead, true},
		{"student cannot list instructors", student, ActInstructorList, false},
		{"instructor takes attendance", instructor, ActAttendanceManage, true},
		{"student cannot take attendance", student, ActAttendanceManage, false},
		{"student sees own payments", student, ActPaymentReadOwn, true},
		{"student cannot manage payments", student, ActPaymentManage, false},
		{"admin updates school info", admin, ActSchoolInfoWrite, true},
		{"unknown action denied", admin, Action("nope"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allows(tt.id, tt.act); got != tt.want {
				t.Fatalf("Allows(%+v, %s) = %v, want %v", tt.id, tt.act, got, tt.want)
			}
		})
	}
}

func TestEveryActionHasRule(t *testing.T) {
	for _, act := range []Action{
		ActClassRead, ActClassWrite, ActInstructorList, ActInstructorRead, ActInstructorWrite,
		ActStudentRead, ActStudentWrite, ActProfile, ActBookingOwn, ActPaymentReadOwn,
		ActPaymentManage, ActAttendanceManage, ActReportRead, ActSchoolInfoRead,
		ActSchoolInfoWrite, ActAccount,
	} {
		if _, ok := rules[act]; !ok {
			t.Errorf("no rule for %s", act)
		}
	}
}
