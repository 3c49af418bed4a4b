package constants

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStaff   = "staff"
)

var (
	AllRoles = []string{RoleAdmin, RoleTeacher, RoleStaff}

	TeacherAndAbove = []string{RoleTeacher, RoleAdmin}

	AdminOnly = []string{RoleAdmin}
)
