package models

type MemberRole string

const (
	MemberRoleAdmin MemberRole = "ADMIN"
	MemberRoleUser  MemberRole = "USER"
	MemberRoleGuest MemberRole = "GUEST"
)

type MemberRecordSource string

const (
	RecordSourcePaymentCompleted MemberRecordSource = "PAYMENT_COMPLETED"
	RecordSourceBackfillPayment  MemberRecordSource = "BACKFILL_PAYMENT"
)

type StudyRole string

const (
	StudyRoleInstructor  StudyRole = "INSTRUCTOR"
	StudyRoleParticipant StudyRole = "PARTICIPANT"
)

// DemoteResult lists the student ids demoted for the current semester.
type DemoteResult struct {
	DemotedMemberStudentIDs []string `json:"demotedMemberStudentIds"`
}

// SemesterOption is one entry of the record-search semester dropdown.
type SemesterOption struct {
	YearSemester string `json:"yearSemester"`
	Label        string `json:"label"`
	Current      bool   `json:"current"`
}

// MemberRecordItem is a per-semester snapshot of a member.
type MemberRecordItem struct {
	MemberRecordID      int64              `json:"memberRecordId"`
	MemberID            int64              `json:"memberId"`
	SnapshotStudentID   *string            `json:"snapshotStudentId"`
	SnapshotName        string             `json:"snapshotName"`
	SnapshotEmail       string             `json:"snapshotEmail"`
	SnapshotPhoneNumber *string            `json:"snapshotPhoneNumber"`
	SnapshotDepartment  *string            `json:"snapshotDepartment"`
	SnapshotGrade       *string            `json:"snapshotGrade"`
	SnapshotRole        MemberRole         `json:"snapshotRole"`
	YearSemester        string             `json:"yearSemester"`
	RecordSource        MemberRecordSource `json:"recordSource"`
	PaymentID           *int64             `json:"paymentId"`
	PaymentCompletedAt  *string            `json:"paymentCompletedAt"`
}

type MemberRecordPage = Page[MemberRecordItem]

// MemberRecordsQuery filters the paginated record search. YearSemester is
// mandatory; the rest are optional.
type MemberRecordsQuery struct {
	YearSemester string
	Page         int
	Size         int
	Keyword      string
	Role         MemberRole
	Sort         string
}

// RecordTimelineItem is one semester entry in a member's record timeline.
type RecordTimelineItem struct {
	MemberRecordID      int64              `json:"memberRecordId"`
	YearSemester        string             `json:"yearSemester"`
	RecordSource        MemberRecordSource `json:"recordSource"`
	SnapshotStudentID   *string            `json:"snapshotStudentId"`
	SnapshotName        string             `json:"snapshotName"`
	SnapshotEmail       string             `json:"snapshotEmail"`
	SnapshotPhoneNumber *string            `json:"snapshotPhoneNumber"`
	SnapshotDepartment  *string            `json:"snapshotDepartment"`
	SnapshotGrade       *string            `json:"snapshotGrade"`
	SnapshotRole        MemberRole         `json:"snapshotRole"`
	PaymentID           *int64             `json:"paymentId"`
	PaymentCompletedAt  *string            `json:"paymentCompletedAt"`
}

type StudyParticipationItem struct {
	StudyMemberID int64     `json:"studyMemberId"`
	StudyID       int64     `json:"studyId"`
	StudyTitle    string    `json:"studyTitle"`
	StudyRole     StudyRole `json:"studyRole"`
	JoinedAt      string    `json:"joinedAt"`
}

type StudyAttendanceItem struct {
	StudyAttendanceID int64  `json:"studyAttendanceId"`
	StudyID           int64  `json:"studyId"`
	StudyTitle        string `json:"studyTitle"`
	StudySessionID    int64  `json:"studySessionId"`
	SessionDate       string `json:"sessionDate"`
	AttendedAt        string `json:"attendedAt"`
}

type ActivityParticipationItem struct {
	ActivityParticipationID int64  `json:"activityParticipationId"`
	ActivityID              int64  `json:"activityId"`
	ActivityName            string `json:"activityName"`
	ParticipatedAt          string `json:"participatedAt"`
}

type SemesterActivitySummary struct {
	StudyParticipationCount    int `json:"studyParticipationCount"`
	StudyAttendanceCount       int `json:"studyAttendanceCount"`
	ActivityParticipationCount int `json:"activityParticipationCount"`
}

// SemesterActivityDetail is a member's activity breakdown for one semester.
type SemesterActivityDetail struct {
	MemberID               int64                       `json:"memberId"`
	YearSemester           string                      `json:"yearSemester"`
	Summary                SemesterActivitySummary     `json:"summary"`
	StudyParticipations    []StudyParticipationItem    `json:"studyParticipations"`
	StudyAttendances       []StudyAttendanceItem       `json:"studyAttendances"`
	ActivityParticipations []ActivityParticipationItem `json:"activityParticipations"`
}
