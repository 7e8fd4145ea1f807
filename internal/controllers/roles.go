package controllers

// Back-office roles. HRD runs the certification desk, IAB audits the
// evaluation documents, admin manages accounts.
var validRoles = map[string]struct{}{
	"admin": {},
	"hrd":   {},
	"iab":   {},
}

func IsValidRole(role string) bool {
	_, ok := validRoles[role]
	return ok
}
