// Package constants is the centralized message catalog: every user-visible
// error or success string lives here so wording stays consistent.
package constants

const (
	// Generic
	MsgInvalidPayload = "Invalid request payload"
	MsgInvalidQuery   = "Invalid query parameters"
	MsgInvalidID      = "Invalid id"
	MsgInternal       = "Something went wrong"

	// Attendance / manual check-in
	MsgTeacherNotFound    = "Teacher not found"
	MsgTeacherInactive    = "Teacher account is inactive"
	MsgDateInFuture       = "Date is in the future"
	MsgTimeOutsideWindow  = "Check-in time is outside school hours"
	MsgAlreadyCheckedIn   = "Already checked in for the same date"
	MsgCheckinCreated     = "Check-in recorded"
	MsgCheckinListFetched = "Check-ins fetched"

	// Rooms
	MsgRoomNameTaken = "Room name already in use"
	MsgRoomNotFound  = "Room not found"
	MsgRoomCreated   = "Room created"
	MsgRoomUpdated   = "Room updated"
	MsgRoomDeleted   = "Room deleted"

	// Departments
	MsgDepartmentNameTaken = "Department name already in use"
	MsgDepartmentNotFound  = "Department not found"
	MsgDepartmentCreated   = "Department created"
	MsgDepartmentUpdated   = "Department updated"
	MsgDepartmentDeleted   = "Department deleted"

	// Subjects
	MsgSubjectCodeTaken = "Subject code already in use"
	MsgSubjectNameTaken = "Subject name already in use"
	MsgSubjectNotFound  = "Subject not found"
	MsgSubjectCreated   = "Subject created"
	MsgSubjectUpdated   = "Subject updated"
	MsgSubjectDeleted   = "Subject deleted"

	// Academic sessions & terms
	MsgSessionNameTaken   = "Academic session name already in use"
	MsgSessionNotFound    = "Academic session not found"
	MsgSessionDatesWrong  = "Session start date must be before end date"
	MsgSessionCreated     = "Academic session created"
	MsgSessionUpdated     = "Academic session updated"
	MsgSessionDeleted     = "Academic session deleted"
	MsgSessionMadeCurrent = "Academic session marked current"
	MsgTermNameTaken      = "Term name already in use for this session"
	MsgTermNotFound       = "Term not found"
	MsgTermDatesWrong     = "Term dates must fall inside the session"
	MsgTermCreated        = "Term created"

	// Classes & streams
	MsgClassNameTaken  = "Class name already in use"
	MsgClassNotFound   = "Class not found"
	MsgClassCreated    = "Class created"
	MsgClassUpdated    = "Class updated"
	MsgClassDeleted    = "Class deleted"
	MsgStreamNameTaken = "Stream name already in use for this class"
	MsgStreamNotFound  = "Stream not found"
	MsgStreamCreated   = "Stream created"

	// Teachers & students
	MsgStaffNoTaken        = "Staff number already in use"
	MsgTeacherUserLinked   = "User is already linked to a teacher"
	MsgTeacherCreated      = "Teacher created"
	MsgTeacherUpdated      = "Teacher updated"
	MsgTeacherDeactivated  = "Teacher deactivated"
	MsgStudentNotFound     = "Student not found"
	MsgStudentInactive     = "Student is not active"
	MsgAdmissionNoTaken    = "Admission number already in use"
	MsgStudentCreated      = "Student created"
	MsgStudentUpdated      = "Student updated"
	MsgStudentDeleted      = "Student deleted"

	// Payments
	MsgPaymentRefTaken   = "Payment reference already recorded"
	MsgPaymentNotFound   = "Payment not found"
	MsgPaidDateInFuture  = "Paid date is in the future"
	MsgPaymentRecorded   = "Payment recorded"
	MsgPaymentsFetched   = "Payments fetched"

	// Auth
	MsgBadCredentials = "Invalid email or password"
	MsgUserInactive   = "User account is disabled"
	MsgEmailTaken     = "Email already registered"
	MsgLoginOK        = "Login successful"
	MsgRegisterOK     = "Account created"
)
