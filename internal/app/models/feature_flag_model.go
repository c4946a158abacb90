package models

// MemberSignupFlag controls whether new members may sign up.
type MemberSignupFlag struct {
	FeatureFlagID *int64  `json:"featureFlagId"`
	RawValue      *string `json:"rawValue"`
	Enabled       *bool   `json:"enabled"`
	Valid         bool    `json:"valid"`
	SignupAllowed bool    `json:"signupAllowed"`
}

// StudyCreationFlag controls whether studies may be created.
type StudyCreationFlag struct {
	FeatureFlagID        *int64  `json:"featureFlagId"`
	RawValue             *string `json:"rawValue"`
	Enabled              *bool   `json:"enabled"`
	Valid                bool    `json:"valid"`
	StudyCreationAllowed bool    `json:"studyCreationAllowed"`
}

// StudyEnrollWindowFlag is the paired open/close window for study enrollment.
type StudyEnrollWindowFlag struct {
	OpenFlagID           *int64  `json:"openFlagId"`
	CloseFlagID          *int64  `json:"closeFlagId"`
	OpenAtRaw            *string `json:"openAtRaw"`
	CloseAtRaw           *string `json:"closeAtRaw"`
	OpenAt               *string `json:"openAt"`
	CloseAt              *string `json:"closeAt"`
	Valid                bool    `json:"valid"`
	EnrollmentAllowedNow bool    `json:"enrollmentAllowedNow"`
}

// FeatureFlags is the aggregate state returned by every flag read or write.
type FeatureFlags struct {
	MemberSignup      MemberSignupFlag      `json:"memberSignup"`
	StudyCreation     StudyCreationFlag     `json:"studyCreation"`
	StudyEnrollWindow StudyEnrollWindowFlag `json:"studyEnrollWindow"`
}

type FlagToggleRequest struct {
	Enabled bool `json:"enabled"`
}

type EnrollWindowRequest struct {
	OpenAt  string `json:"openAt" validate:"required"`
	CloseAt string `json:"closeAt" validate:"required"`
}
